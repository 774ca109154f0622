package api

import (
	"dkowalik/todo-api/model"
	"dkowalik/todo-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

type todoCreateBody struct {
	Text string `json:"text"`
}

func (a *API) TodoCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data todoCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	text, err := validators.TodoTextValidator(data.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"field":     "text",
			"requestID": requestID,
		})
		return
	}

	todoID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate todo ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	todo := model.Todo{
		ID:        todoID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := a.DB.Create(&todo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create todo", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, todo)
}
