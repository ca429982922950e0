package response

import "github.com/gin-gonic/gin"

// Error emits the failure body. Messages stay generic per error category; the
// internal cause (which constraint fired, which lookup missed) is not exposed.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"detail": message})
}
