package server

import (
	"time"

	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with a correlation id and timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = utils.NewRequestID()
	}
	c.Header("X-Request-ID", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// healthHandler reports liveness for one service
func healthHandler(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": service})
	}
}
