package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// AdminHandler lida com as rotas administrativas
type AdminHandler struct {
	txService    *services.TransactionService
	adminService *services.AdminService
	logger       ports.Logger
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(
	txService *services.TransactionService,
	adminService *services.AdminService,
	logger ports.Logger,
) *AdminHandler {
	return &AdminHandler{
		txService:    txService,
		adminService: adminService,
		logger:       logger,
	}
}

// ListarTransacoes lista todas as transações com o nome do cliente
// @Summary Lista todas as transações
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TransacaoResponse
// @Router /api/admin/transacoes [get]
func (h *AdminHandler) ListarTransacoes(c *gin.Context) {
	txs, err := h.txService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransacaoAdminResponses(txs))
}

// Estatisticas retorna os agregados dos últimos 30 dias
// @Summary Estatísticas dos últimos 30 dias
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EstatisticasResponse
// @Router /api/admin/estatisticas [get]
func (h *AdminHandler) Estatisticas(c *gin.Context) {
	stats, err := h.txService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEstatisticasResponse(stats))
}

// LimparBanco apaga todos os dados e recria as contas e configurações
// iniciais
// @Summary Limpa o banco de dados
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /api/admin/limpar-banco [post]
func (h *AdminHandler) LimparBanco(c *gin.Context) {
	if err := h.adminService.Reset(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("database cleared by administrator")
	c.JSON(http.StatusOK, dto.Mensagem(c, "message.database_cleared"))
}
