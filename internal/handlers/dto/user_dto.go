package dto

import (
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// CadastroRequest representa a requisição de cadastro (cliente ou
// funcionário). A força da senha é validada no serviço.
type CadastroRequest struct {
	NomeCompleto string `json:"nome_completo" binding:"required,min=3,max=100"`
	Email        string `json:"email" binding:"required,email"`
	CPF          string `json:"cpf" binding:"required,cpf"`
	Senha        string `json:"senha" binding:"required,min=6,max=50"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	CPF   string `json:"cpf" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// AtualizarSaldoRequest atualiza saldo e/ou pontos com valores absolutos
type AtualizarSaldoRequest struct {
	Saldo  *float64 `json:"saldo" binding:"omitempty,gte=0"`
	Pontos *int     `json:"pontos" binding:"omitempty,gte=0"`
}

// BuscarClienteRequest é a busca de cliente por CPF feita por funcionário
type BuscarClienteRequest struct {
	CPFCliente    string `json:"cpf_cliente" binding:"required,cpf"`
	FuncionarioID string `json:"funcionario_id" binding:"required"`
}

// UsuarioResponse representa um usuário na API, sem o hash de senha
type UsuarioResponse struct {
	ID           string    `json:"id"`
	NomeCompleto string    `json:"nome_completo"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	Role         string    `json:"role"`
	Saldo        float64   `json:"saldo"`
	Pontos       int       `json:"pontos"`
	Ativo        bool      `json:"ativo"`
	DataCriacao  time.Time `json:"data_criacao"`
}

// CadastroResponse é a resposta do cadastro
type CadastroResponse struct {
	Mensagem string          `json:"mensagem"`
	Usuario  UsuarioResponse `json:"usuario"`
}

// LoginResponse é a resposta do login
type LoginResponse struct {
	Mensagem string          `json:"mensagem"`
	Usuario  UsuarioResponse `json:"usuario"`
	Token    string          `json:"token"`
}

// ClienteResponse é a resposta da busca de cliente por funcionário
type ClienteResponse struct {
	Mensagem string          `json:"mensagem"`
	Cliente  UsuarioResponse `json:"cliente"`
}

// SaldoAtualizadoResponse é a resposta da atualização de saldo/pontos
type SaldoAtualizadoResponse struct {
	Mensagem string  `json:"mensagem"`
	Saldo    float64 `json:"saldo"`
	Pontos   int     `json:"pontos"`
}

// ToUsuarioResponse converte uma entidade User para UsuarioResponse
func ToUsuarioResponse(user *entities.User) UsuarioResponse {
	return UsuarioResponse{
		ID:           user.ID,
		NomeCompleto: user.Name,
		Email:        user.Email.String(),
		CPF:          user.CPF.String(),
		Role:         string(user.Role),
		Saldo:        user.Balance,
		Pontos:       user.Points,
		Ativo:        user.Active,
		DataCriacao:  user.CreatedAt,
	}
}
