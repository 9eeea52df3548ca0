package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/model"
	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

type OrderHandler struct {
	Orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// Create inserts the order verbatim. The :id path parameter is accepted and
// ignored, as existing clients send it.
func (h *OrderHandler) Create(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	res, err := h.Orders.Place(c.Request.Context(), doc)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	var req model.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	res, err := h.Orders.Confirm(c.Request.Context(), c.Param("orderId"), req.ProductID, service.ToInt(req.OrderQuantity))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) Pay(c *gin.Context) {
	var req model.OrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	res, err := h.Orders.MarkPaid(c.Request.Context(), c.Param("orderId"), req.TxID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) ByEmail(c *gin.Context) {
	docs, err := h.Orders.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	res, err := h.Orders.Cancel(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) All(c *gin.Context) {
	docs, err := h.Orders.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *OrderHandler) Get(c *gin.Context) {
	doc, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
