package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/api/middlewares"
	"github.com/cultsicarias/File-Shrine/api/models"
	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// AuthController handles login and auth-status for the shared password.
type AuthController struct {
	sessions *models.SessionStore
	password string
}

func NewAuthController(sessions *models.SessionStore, password string) *AuthController {
	return &AuthController{sessions: sessions, password: password}
}

// HandleLogin handles POST /login. The comparison is exact and
// case-sensitive against the single configured secret.
func (ac *AuthController) HandleLogin(c *gin.Context) {
	var request types.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnauthorized, tool.FastReturnMessage("Incorrect password"))
		return
	}

	if subtle.ConstantTimeCompare([]byte(request.Password), []byte(ac.password)) != 1 {
		c.JSON(http.StatusUnauthorized, tool.FastReturnMessage("Incorrect password"))
		return
	}

	ac.sessions.Authenticate(middlewares.SessionToken(c))
	tool.DefaultLogger.Infof("[Login] Session authenticated from %s", c.ClientIP())
	c.JSON(http.StatusOK, tool.FastReturnMessage("Authentication successful"))
}

// HandleAuthStatus handles GET /auth-status. Never errors.
func (ac *AuthController) HandleAuthStatus(c *gin.Context) {
	authenticated := ac.sessions.IsAuthenticated(middlewares.SessionToken(c))
	c.JSON(http.StatusOK, tool.FastReturnAuthStatus(authenticated))
}
