package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mesto-app/mesto-api/pkg/apperror"
	"github.com/mesto-app/mesto-api/pkg/helpers"
	"github.com/mesto-app/mesto-api/pkg/response"
)

// CtxUserIDKey is where the authenticated user id lives in the Gin context.
const CtxUserIDKey = "userID"

// Auth reads the session cookie, verifies the token and injects the caller
// identity. Missing, malformed and expired tokens all fail closed with the
// same message.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, apperror.Unauthorized("Authorization required"))
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error(c, apperror.Unauthorized("Authorization required"))
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
