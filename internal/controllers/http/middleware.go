package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxClientID = "clientID"
	ctxToken    = "token"
)

// AuthRequired resolves the bearer token against the Redis token store. Any
// failure is a 401; the storefront reacts by clearing its stored session and
// redirecting to sign-in.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentification requise"})
			return
		}

		clientID, err := h.tokens.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "session expirée"})
			return
		}

		c.Set(ctxClientID, clientID)
		c.Set(ctxToken, token)
		c.Next()
	}
}

func (h *Handler) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		client, err := h.accounts.GetClient(c.Request.Context(), clientID(c))
		if err != nil || client == nil || !client.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "accès réservé"})
			return
		}
		c.Next()
	}
}

func clientID(c *gin.Context) uint64 {
	return c.GetUint64(ctxClientID)
}
