package utils

import "github.com/gin-gonic/gin"

// ErrorResponse aborts the chain with {"error": message}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}

// SuccessResponse writes {"message": message}.
func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
