package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-mihir/manufacturer-website-server-side/internal/model"
	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

type PaymentHandler struct {
	Payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreateIntent charges in minor units: the posted total is coerced to an
// integer and multiplied by 100, matching what clients already rely on.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req model.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	amount := int64(service.ToInt(req.TotalPrice)) * 100
	secret, err := h.Payments.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
