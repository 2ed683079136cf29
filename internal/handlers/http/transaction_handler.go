package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// TransactionHandler lida com o extrato de transações
type TransactionHandler struct {
	txService *services.TransactionService
	logger    ports.Logger
}

// NewTransactionHandler cria um novo TransactionHandler
func NewTransactionHandler(txService *services.TransactionService, logger ports.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// ListarPorUsuario lista as transações de um usuário, mais recentes
// primeiro
// @Summary Extrato do usuário
// @Tags transacoes
// @Produce json
// @Param userId path string true "ID do usuário"
// @Success 200 {array} dto.TransacaoResponse
// @Router /api/transacoes/{userId} [get]
func (h *TransactionHandler) ListarPorUsuario(c *gin.Context) {
	txs, err := h.txService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransacaoResponses(txs))
}
