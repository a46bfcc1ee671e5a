package handlers

import (
	"net/http"

	"minimalapi/utils"

	"github.com/gin-gonic/gin"
)

// HelloHandler answers the root path. It is left out of the API document.
func HelloHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// NewHealthHandler reports liveness from the given monitor.
func NewHealthHandler(m *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Status())
	}
}
