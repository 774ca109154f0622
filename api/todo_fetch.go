package api

import (
	"dkowalik/todo-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) TodoFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	todoID := c.Param("id")

	var todo model.Todo

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, todoID).
		First(&todo).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Todo not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch todo", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, todo)
}
