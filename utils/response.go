package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the shared success envelope
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the shared error envelope; errors carry no data
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
		"data":    nil,
	})
}
