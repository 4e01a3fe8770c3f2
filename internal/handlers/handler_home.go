package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler responds with a simple service banner.
func HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "finbooks-backend",
		"status":  "running",
	})
}
