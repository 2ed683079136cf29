package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// WalletHandler lida com conversão de pontos e códigos de resgate
type WalletHandler struct {
	walletService *services.WalletService
	logger        ports.Logger
}

// NewWalletHandler cria um novo WalletHandler
func NewWalletHandler(walletService *services.WalletService, logger ports.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// ConverterPontos converte pontos do usuário em saldo de cashback
// @Summary Converte pontos em saldo
// @Tags carteira
// @Accept json
// @Produce json
// @Param request body dto.ConverterPontosRequest true "Usuário e quantidade de pontos"
// @Success 200 {object} dto.ConversaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/converter-pontos [post]
func (h *WalletHandler) ConverterPontos(c *gin.Context) {
	var req dto.ConverterPontosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	result, err := h.walletService.ConvertPoints(c.Request.Context(), req.UsuarioID, req.Pontos)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConversaoResponse{
		Mensagem:          dto.T(c, "message.points_converted"),
		PontosConvertidos: result.PointsConverted,
		CashbackGerado:    result.CashbackEarned,
		NovoSaldo:         result.NewBalance,
		NovosPontos:       result.NewPoints,
	})
}

// GerarCodigo cria um código de resgate de cashback. O saldo não é
// debitado aqui: a verificação acontece na validação do código.
// @Summary Gera código de cashback
// @Tags carteira
// @Accept json
// @Produce json
// @Param request body dto.GerarCodigoRequest true "Usuário e valor"
// @Success 201 {object} dto.CodigoGeradoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/gerar-codigo-cashback [post]
func (h *WalletHandler) GerarCodigo(c *gin.Context) {
	var req dto.GerarCodigoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	code, err := h.walletService.CreateCode(c.Request.Context(), req.UsuarioID, req.Valor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCodigoGeradoResponse(dto.T(c, "message.code_generated"), code))
}

// ValidarCodigo valida e consome um código de resgate em nome de um
// funcionário
// @Summary Valida código de cashback
// @Tags carteira
// @Accept json
// @Produce json
// @Param request body dto.ValidarCodigoRequest true "Código e ID do funcionário"
// @Success 200 {object} dto.CodigoValidadoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/validar-codigo-cashback [post]
func (h *WalletHandler) ValidarCodigo(c *gin.Context) {
	var req dto.ValidarCodigoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	result, err := h.walletService.RedeemCode(c.Request.Context(), req.FuncionarioID, req.Codigo)
	if err != nil {
		// No resgate o saldo checado é o do dono do código, não o de
		// quem chama
		if errs.Is(err, errors.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, dto.Erro(c, "error.customer_insufficient_balance"))
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CodigoValidadoResponse{
		Mensagem:    dto.T(c, "message.code_validated"),
		ClienteNome: result.CustomerName,
		Valor:       result.Value,
		CodigoID:    result.CodeID,
		NovoSaldo:   result.NewBalance,
	})
}
