package response

import "github.com/gin-gonic/gin"

// Every API reply uses the same envelope: {success, data} on the happy path,
// {success, error:{code, message}} otherwise. Codes are stable strings such
// as BOOKING_CONFLICT that clients can switch on.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails carries extra structure alongside the message, typically
// the per-field map produced by the validator package.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
