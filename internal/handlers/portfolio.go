package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

// PortfolioHandler serves the read-only portfolio and blog content straight
// off the store.
type PortfolioHandler struct {
	Information store.Docs
	Projects    store.Docs
	Blogs       store.Docs
}

func NewPortfolioHandler(information, projects, blogs store.Docs) *PortfolioHandler {
	return &PortfolioHandler{Information: information, Projects: projects, Blogs: blogs}
}

func (h *PortfolioHandler) Info(c *gin.Context) {
	doc, err := h.Information.FindOne(c.Request.Context(), bson.M{})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *PortfolioHandler) ProjectList(c *gin.Context) {
	docs, err := h.Projects.Find(c.Request.Context(), bson.M{})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *PortfolioHandler) BlogList(c *gin.Context) {
	docs, err := h.Blogs.Find(c.Request.Context(), bson.M{})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
