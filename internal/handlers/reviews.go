package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

type ReviewHandler struct {
	Catalog service.CatalogService
}

func NewReviewHandler(catalog service.CatalogService) *ReviewHandler {
	return &ReviewHandler{Catalog: catalog}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	res, err := h.Catalog.AddReview(c.Request.Context(), doc)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) List(c *gin.Context) {
	docs, err := h.Catalog.Reviews(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *ReviewHandler) ByEmail(c *gin.Context) {
	docs, err := h.Catalog.ReviewsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	res, err := h.Catalog.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
