package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	"github.com/postoverde/cashback-backend/internal/services"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Cadastro cadastra um novo cliente
// @Summary Cadastro de cliente
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CadastroRequest true "Dados do cadastro"
// @Success 201 {object} dto.CadastroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/cadastro [post]
func (h *AuthHandler) Cadastro(c *gin.Context) {
	h.register(c, entities.RoleCustomer, "message.user_created")
}

// CadastroFuncionario cadastra um novo funcionário
// @Summary Cadastro de funcionário
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CadastroRequest true "Dados do cadastro"
// @Success 201 {object} dto.CadastroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/cadastro-funcionario [post]
func (h *AuthHandler) CadastroFuncionario(c *gin.Context) {
	h.register(c, entities.RoleEmployee, "message.employee_created")
}

func (h *AuthHandler) register(c *gin.Context, role entities.Role, messageKey string) {
	var req dto.CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.NomeCompleto,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Senha,
	}, role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CadastroResponse{
		Mensagem: dto.T(c, messageKey),
		Usuario:  dto.ToUsuarioResponse(user),
	})
}

// Login autentica um usuário por CPF e senha
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErro(c, err))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.CPF, req.Senha)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Mensagem: dto.T(c, "message.login_success"),
		Usuario:  dto.ToUsuarioResponse(user),
		Token:    token,
	})
}
