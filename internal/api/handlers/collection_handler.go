// server/internal/api/handlers/collection_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type CollectionHandler struct {
	Collections *service.CollectionService
}

func (h *CollectionHandler) RecordCollection(c *gin.Context) {
	var req dto.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Collections.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// GetCollectionsByUser lists the collections of ?userid=.
func (h *CollectionHandler) GetCollectionsByUser(c *gin.Context) {
	records, err := h.Collections.ListByUser(c.Request.Context(), c.Query("userid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetYearlyCollections counts the collections of ?userId= per year.
func (h *CollectionHandler) GetYearlyCollections(c *gin.Context) {
	counts, err := h.Collections.CountByYear(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
