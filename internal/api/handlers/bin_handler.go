// server/internal/api/handlers/bin_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type BinHandler struct {
	Bins        *service.BinService
	Collections *service.CollectionService
	Reports     *service.ReportService // nil when report export is not configured
}

// CreateBin registers a bin for an existing user.
func (h *BinHandler) CreateBin(c *gin.Context) {
	var req dto.BinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Bins.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// GetBinsByUser lists the bins of ?userid=.
func (h *BinHandler) GetBinsByUser(c *gin.Context) {
	bins, err := h.Bins.ListByUser(c.Request.Context(), c.Query("userid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bins)
}

func (h *BinHandler) GetBin(c *gin.Context) {
	bin, err := h.Bins.Get(c.Request.Context(), c.Param("binId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bin)
}

// UpdateBinStatus sets ?newStatus= on the bin with document id :binId.
func (h *BinHandler) UpdateBinStatus(c *gin.Context) {
	status, ok := c.GetQuery("newStatus")
	if !ok {
		var req dto.StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
			respondError(c, apperr.InvalidInput("newStatus is required"))
			return
		}
		status = *req.Status
	}

	msg, err := h.Bins.SetStatus(c.Request.Context(), c.Param("binId"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *BinHandler) GetMonthlyCollections(c *gin.Context) {
	counts, err := h.Collections.CountByMonth(c.Request.Context(), c.Param("binId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *BinHandler) GetMonthlyCollectionsWithTotal(c *gin.Context) {
	counts, err := h.Collections.CountByMonthAndTotal(c.Request.Context(), c.Param("binId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// ExportMonthlyReport uploads the monthly counts of :binId and returns the report with its URL.
func (h *BinHandler) ExportMonthlyReport(c *gin.Context) {
	report, err := h.Reports.ExportMonthly(c.Request.Context(), c.Param("binId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
