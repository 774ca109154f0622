package api

import (
	"dkowalik/todo-api/model"
	"dkowalik/todo-api/security"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout removes the token the request authenticated with from the
// user's token list. Other sessions of the same user stay live. Deleting
// an already removed token is a no-op
func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)
	token := c.MustGet("authToken").(string)

	err := a.DB.
		Where("user_id = ? AND access = ? AND token = ?", userID, security.AccessAuth, token).
		Delete(model.Token{}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to remove token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusOK)
}
