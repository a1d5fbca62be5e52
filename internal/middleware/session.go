package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	SessionContextKey = "session_id"
)

type SessionConfig struct {
	TTL    time.Duration
	Secure bool
}

// Session guarantees every request carries a session id. A missing or
// malformed cookie is replaced with a fresh one; the cart lives under it.
func Session(cfg SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL / time.Second)
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		// refresh on every request so an active session never expires
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, maxAge, "/", "", cfg.Secure, true)

		c.Set(SessionContextKey, id)
		c.Next()
	}
}
