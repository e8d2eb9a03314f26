package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	sessionrepo "bookstore-api/internal/repository/session"
	"bookstore-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by the session middlewares.
const (
	ctxCustomerID = "customerID"
	ctxOwnerID    = "ownerID"
	ctxToken      = "sessionToken"
)

const sessionCookieName = "bookstore_session"

// extractToken reads the session token from the Authorization header,
// falling back to the session cookie for browser clients.
func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func requireSession(logger *log.Logger, sessions SessionLookup, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		s, err := sessions.Lookup(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
				return
			}
			logger.Printf("session lookup: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if s.Kind != kind {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set(ctxToken, token)
		switch kind {
		case sessionrepo.KindCustomer:
			c.Set(ctxCustomerID, s.SubjectID)
		case sessionrepo.KindOwner:
			c.Set(ctxOwnerID, s.SubjectID)
		}
		c.Next()
	}
}

func requireCustomer(logger *log.Logger, sessions SessionLookup) gin.HandlerFunc {
	return requireSession(logger, sessions, sessionrepo.KindCustomer)
}

func requireOwner(logger *log.Logger, sessions SessionLookup) gin.HandlerFunc {
	return requireSession(logger, sessions, sessionrepo.KindOwner)
}

func customerID(c *gin.Context) int32 {
	v, _ := c.Get(ctxCustomerID)
	id, _ := v.(int32)
	return id
}

func sessionToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}
