package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// KeySessionID is the gin context key carrying the session id.
	KeySessionID = "sid"
	// HeaderSessionID lets cookie-less clients pin their session.
	HeaderSessionID = "X-Session-ID"
)

// Session resolves the caller's session id from the cookie or header, minting
// a fresh uuid for first-time callers, and re-sets the cookie to slide the TTL.
func Session(cookieName string, maxAgeSec int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = c.GetHeader(HeaderSessionID)
		}
		if sid == "" {
			sid = uuid.NewString()
		}
		c.SetCookie(cookieName, sid, maxAgeSec, "/", "", false, true)
		c.Writer.Header().Set(HeaderSessionID, sid)
		c.Set(KeySessionID, sid)
		c.Next()
	}
}

// SessionID reads the session id resolved by Session.
func SessionID(c *gin.Context) string { return c.GetString(KeySessionID) }
