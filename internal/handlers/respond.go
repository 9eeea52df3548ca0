package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

// fail maps service errors onto status codes. Success-path shapes are fixed
// by the wire contract; error bodies are ours to choose.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBadObjectID), errors.Is(err, service.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
