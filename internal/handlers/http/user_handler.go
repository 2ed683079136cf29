package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// UserHandler lida com consultas e atualizações de usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetUsuario busca um usuário por ID
// @Summary Busca usuário por ID
// @Tags usuarios
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/usuario/{id} [get]
func (h *UserHandler) GetUsuario(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(user))
}

// AtualizarSaldo atualiza saldo e/ou pontos de um usuário com valores
// absolutos
// @Summary Atualiza saldo e pontos
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "ID do usuário"
// @Param request body dto.AtualizarSaldoRequest true "Novos valores"
// @Success 200 {object} dto.SaldoAtualizadoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/usuarios/{id}/saldo [put]
func (h *UserHandler) AtualizarSaldo(c *gin.Context) {
	var req dto.AtualizarSaldoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	user, err := h.userService.UpdateBalance(c.Request.Context(), c.Param("id"), req.Saldo, req.Pontos)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SaldoAtualizadoResponse{
		Mensagem: dto.T(c, "message.balance_updated"),
		Saldo:    user.Balance,
		Pontos:   user.Points,
	})
}
