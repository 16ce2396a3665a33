package handler

import (
	"zh-mnemonic/internal/handler/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary Check system health
// @Description Get the current health status of the server
// @Tags system
// @Produce  json
// @Success 200 {object} response.Response
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "UP",
		"version": Version,
		"service": "converter-server",
	})
}

// Version 构建时可通过 -ldflags "-X zh-mnemonic/internal/handler.Version=..." 覆盖
var Version = "1.0.0"
