package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/api/models"
	"github.com/cultsicarias/File-Shrine/tool"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "shrine_session"

const sessionTokenKey = "sessionToken"

// EnsureSession issues a session cookie on first contact and stashes the
// token in the gin context for downstream handlers.
func EnsureSession(store *models.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			token = tool.GenerateSessionToken()
			c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
		}
		store.Touch(token)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// SessionToken returns the request's session token set by EnsureSession.
func SessionToken(c *gin.Context) string {
	token, _ := c.Get(sessionTokenKey)
	s, _ := token.(string)
	return s
}

// RequireAuth rejects the request unless the session is authenticated.
// It does not redirect, the client decides what to do with the 401.
func RequireAuth(store *models.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated(SessionToken(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, tool.FastReturnMessage("Not authenticated"))
			return
		}
		c.Next()
	}
}
