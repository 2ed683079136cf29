package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse é a resposta do health check
type StatusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Servidor  string    `json:"servidor"`
}

// StatusHandler responde o health check da API
type StatusHandler struct {
	serverName string
}

// NewStatusHandler cria um novo StatusHandler
func NewStatusHandler(serverName string) *StatusHandler {
	return &StatusHandler{serverName: serverName}
}

// Status retorna o status do servidor
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /api/status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Servidor:  h.serverName,
	})
}
