package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit caps request bodies at maxBodyBytes. Reading past the cap fails with
// *http.MaxBytesError, which the payload binder reports as a 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBodyBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		}
		c.Next()
	}
}
