package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request including request_id and response size.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		tag := "[HTTP]"
		if status >= 500 {
			tag = "[HTTP][ERROR]"
		}

		log.Printf("%s request_id=%s method=%s path=%s status=%d bytes=%d latency_ms=%.3f ip=%s",
			tag,
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			status,
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
