package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the server is up
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Server is healthy"
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
