package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "storefront-api/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.Abort()
			resp.Message(c, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}
}
