package tool

import (
	"github.com/gin-gonic/gin"
)

func FastReturnMessage(msg string) gin.H {
	return gin.H{
		"message": msg,
	}
}

func FastReturnAuthStatus(authenticated bool) gin.H {
	return gin.H{
		"authenticated": authenticated,
	}
}
