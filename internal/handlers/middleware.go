package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
)

// Guard provides the auth middleware for the guarded routes.
type Guard struct {
	Tokens service.TokenService
	Users  service.UserService
}

func NewGuard(tokens service.TokenService, users service.UserService) *Guard {
	return &Guard{Tokens: tokens, Users: users}
}

// RequireAuth rejects requests without a verifiable bearer token and stores
// the token's email in the context for downstream handlers.
func (g *Guard) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized Access"})
		return
	}
	var token string
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		token = parts[1]
	}
	email, err := g.Tokens.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}
	c.Set("email", email)
	c.Next()
}

// RequireAdmin runs after RequireAuth and denies any requester whose user
// record does not carry the admin role. An unknown requester is denied the
// same way.
func (g *Guard) RequireAdmin(c *gin.Context) {
	email := c.GetString("email")
	admin, err := g.Users.IsAdmin(c.Request.Context(), email)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !admin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}
	c.Next()
}
