package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserFetch returns the profile of the authenticated user
func (a *API) UserFetch(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.MustGet("userID").(string),
		"email": c.MustGet("userEmail").(string),
	})
}
