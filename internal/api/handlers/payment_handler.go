// server/internal/api/handlers/payment_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type PaymentHandler struct {
	Payments *service.PaymentService
}

func (h *PaymentHandler) AddPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Payments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.Payments.ListByUser(c.Request.Context(), c.Query("userid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetNextPayment(c *gin.Context) {
	next, err := h.Payments.NextDue(c.Request.Context(), c.Query("userid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, next)
}
