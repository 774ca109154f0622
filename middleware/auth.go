// Package middleware contains any custom middleware used in the app
package middleware

import (
	"dkowalik/todo-api/model"
	"dkowalik/todo-api/security"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware resolves the x-auth header to a user. A token is
// only accepted when its signature checks out AND the exact token
// string is still present in the user's stored token list. Logging out
// removes the row, so a replayed token fails the second check even
// though its signature is still valid
func NewAuthMiddleware(d *gorm.DB, tokens *security.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr := c.GetHeader("x-auth")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No x-auth header",
				"requestID": requestID,
			})
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid auth token",
				"requestID": requestID,
			})

			zap.L().Debug("Failed to verify token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if claims.Access != security.AccessAuth {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid auth token",
				"requestID": requestID,
			})
			return
		}

		var tok model.Token

		err = d.Where("user_id = ? AND access = ? AND token = ?", claims.UserID, claims.Access, tokenStr).
			First(&tok).
			Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				// Signature is fine but the token was revoked
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid auth token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		var user model.User

		err = d.Where("id = ?", claims.UserID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid auth token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("authToken", tokenStr)
		c.Next()
	}
}
