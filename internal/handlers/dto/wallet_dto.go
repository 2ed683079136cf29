package dto

import (
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// ConverterPontosRequest converte pontos em saldo de cashback
type ConverterPontosRequest struct {
	UsuarioID string `json:"usuario_id" binding:"required"`
	Pontos    int    `json:"pontos" binding:"required,gt=0"`
}

// GerarCodigoRequest cria um código de resgate
type GerarCodigoRequest struct {
	UsuarioID string  `json:"usuario_id" binding:"required"`
	Valor     float64 `json:"valor" binding:"required,gt=0"`
}

// ValidarCodigoRequest valida/consome um código em nome de um
// funcionário
type ValidarCodigoRequest struct {
	Codigo        string `json:"codigo" binding:"required"`
	FuncionarioID string `json:"funcionario_id" binding:"required"`
}

// ConversaoResponse é a resposta da conversão de pontos
type ConversaoResponse struct {
	Mensagem          string  `json:"mensagem"`
	PontosConvertidos int     `json:"pontos_convertidos"`
	CashbackGerado    float64 `json:"cashback_gerado"`
	NovoSaldo         float64 `json:"novo_saldo"`
	NovosPontos       int     `json:"novos_pontos"`
}

// CodigoGeradoResponse é a resposta da criação de código
type CodigoGeradoResponse struct {
	Mensagem string    `json:"mensagem"`
	Codigo   string    `json:"codigo"`
	Valor    float64   `json:"valor"`
	ExpiraEm time.Time `json:"expira_em"`
}

// CodigoValidadoResponse é a resposta da validação de código
type CodigoValidadoResponse struct {
	Mensagem    string  `json:"mensagem"`
	ClienteNome string  `json:"cliente_nome"`
	Valor       float64 `json:"valor"`
	CodigoID    string  `json:"codigo_id"`
	NovoSaldo   float64 `json:"novo_saldo"`
}

// ToCodigoGeradoResponse converte o código criado para a resposta da API
func ToCodigoGeradoResponse(mensagem string, code *entities.CashbackCode) CodigoGeradoResponse {
	return CodigoGeradoResponse{
		Mensagem: mensagem,
		Codigo:   code.Code,
		Valor:    code.Value,
		ExpiraEm: code.ExpiresAt,
	}
}
