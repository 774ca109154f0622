package api

import (
	"dkowalik/todo-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TodoFetchBulk returns every todo of the authenticated user, oldest first
func (a *API) TodoFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	todos := []model.Todo{}

	err := a.DB.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&todos).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch todos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todos": todos,
	})
}
