package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// EmployeeHandler lida com as operações do terminal do funcionário
type EmployeeHandler struct {
	userService     *services.UserService
	purchaseService *services.PurchaseService
	logger          ports.Logger
}

// NewEmployeeHandler cria um novo EmployeeHandler
func NewEmployeeHandler(
	userService *services.UserService,
	purchaseService *services.PurchaseService,
	logger ports.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		userService:     userService,
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// BuscarCliente busca um cliente pelo CPF em nome de um funcionário
// @Summary Busca cliente por CPF
// @Tags funcionario
// @Accept json
// @Produce json
// @Param request body dto.BuscarClienteRequest true "CPF do cliente e ID do funcionário"
// @Success 200 {object} dto.ClienteResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/funcionario/buscar-cliente [post]
func (h *EmployeeHandler) BuscarCliente(c *gin.Context) {
	var req dto.BuscarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	customer, err := h.userService.FindCustomerByCPF(c.Request.Context(), req.FuncionarioID, req.CPFCliente)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClienteResponse{
		Mensagem: dto.T(c, "message.customer_found"),
		Cliente:  dto.ToUsuarioResponse(customer),
	})
}

// RegistrarAbastecimento registra um abastecimento e credita os pontos
// do cliente
// @Summary Registra abastecimento
// @Tags funcionario
// @Accept json
// @Produce json
// @Param request body dto.RegistrarAbastecimentoRequest true "Dados do abastecimento"
// @Success 201 {object} dto.AbastecimentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/funcionario/registrar-abastecimento [post]
func (h *EmployeeHandler) RegistrarAbastecimento(c *gin.Context) {
	var req dto.RegistrarAbastecimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	result, err := h.purchaseService.RecordPurchase(c.Request.Context(), services.RecordPurchaseInput{
		EmployeeID:    req.FuncionarioID,
		CustomerCPF:   req.CPFCliente,
		Fuel:          entities.FuelType(req.Combustivel),
		PaymentMethod: entities.PaymentMethod(req.FormaPagamento),
		Liters:        req.Litros,
		Amount:        req.ValorTotal,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AbastecimentoResponse{
		Mensagem: dto.T(c, "message.purchase_recorded"),
		Transacao: dto.ResumoAbastecimento{
			ID:           result.Transaction.ID,
			Cliente:      result.CustomerName,
			Combustivel:  string(result.Transaction.Fuel),
			Litros:       result.Transaction.Liters,
			Valor:        result.Transaction.Amount,
			PontosGanhos: result.PointsEarned,
			TotalPontos:  result.TotalPoints,
		},
	})
}
