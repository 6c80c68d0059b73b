package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const draftCookie = "draft_session"

// DraftSession guarantees every request carries a draft-session id, minting a
// new one when the cookie is absent, and exposes it under "draft_session" in
// the gin context.
func DraftSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(draftCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(draftCookie, id, 0, "/", "", false, true)
		}
		c.Set(draftCookie, id)
		c.Next()
	}
}

// SessionID returns the draft-session id set by DraftSession.
func SessionID(c *gin.Context) string {
	return c.GetString(draftCookie)
}
