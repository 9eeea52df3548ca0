package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

type UserHandler struct {
	Users  service.UserService
	Tokens service.TokenService
}

func NewUserHandler(users service.UserService, tokens service.TokenService) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens}
}

// Upsert is the login/registration endpoint: it stores whatever profile the
// client sent and answers with the store result plus a fresh token.
func (h *UserHandler) Upsert(c *gin.Context) {
	email := c.Param("email")
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	result, err := h.Users.Upsert(c.Request.Context(), email, doc)
	if err != nil {
		fail(c, err)
		return
	}
	token, err := h.Tokens.Issue(email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

func (h *UserHandler) Info(c *gin.Context) {
	doc, err := h.Users.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *UserHandler) List(c *gin.Context) {
	docs, err := h.Users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// AdminStatus is the unauthenticated role probe used by the client UI.
func (h *UserHandler) AdminStatus(c *gin.Context) {
	admin, err := h.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	res, err := h.Users.MakeAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
