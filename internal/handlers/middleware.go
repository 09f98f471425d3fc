package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	operatorIDKey = "operatorID"
	// browsers cannot set headers on a websocket handshake
	tokenQueryParam = "access_token"
)

// bearerToken takes the token from the Authorization header, falling back to
// the access_token query parameter. The header wins when both are present.
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if tok := c.Query(tokenQueryParam); tok != "" {
			return tok, ""
		}
		return "", "missing Authorization header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", "invalid Authorization header format"
	}
	return strings.TrimSpace(parts[1]), ""
}

func (h *Handler) operatorMiddleware(c *gin.Context) {
	token, problem := bearerToken(c)
	if problem != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		h.log.Debugw("auth_token_rejected", "path", c.FullPath(), "err", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(operatorIDKey, id)
	c.Next()
}

// operatorID returns the id stored by operatorMiddleware.
func operatorID(c *gin.Context) (int, bool) {
	v, ok := c.Get(operatorIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
