package api

import (
	"dkowalik/todo-api/model"
	"dkowalik/todo-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type todoEditBody struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (a *API) TodoEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	todoID := c.Param("id")

	var data todoEditBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

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

	if data.Text != nil {
		text, err := validators.TodoTextValidator(*data.Text)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"field":     "text",
				"requestID": requestID,
			})
			return
		}

		todo.Text = text
	}

	if data.Completed != nil {
		todo.Completed = *data.Completed

		if todo.Completed {
			now := time.Now().UnixMilli()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	// Save instead of Updates so flipping completed back to false
	// nulls out completed_at as well
	if err := a.DB.Save(&todo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update todo", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, todo)
}
