package dto

import (
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// RegistrarAbastecimentoRequest representa o registro de um
// abastecimento por um funcionário
type RegistrarAbastecimentoRequest struct {
	CPFCliente     string  `json:"cpf_cliente" binding:"required,cpf"`
	FuncionarioID  string  `json:"funcionario_id" binding:"required"`
	Combustivel    string  `json:"combustivel" binding:"required"`
	FormaPagamento string  `json:"forma_pagamento" binding:"required"`
	Litros         float64 `json:"litros" binding:"omitempty,gte=0"`
	ValorTotal     float64 `json:"valor_total" binding:"required,gt=0"`
}

// TransacaoResponse representa uma transação na API
type TransacaoResponse struct {
	ID                  string    `json:"id"`
	UsuarioID           string    `json:"usuario_id"`
	FuncionarioID       *string   `json:"funcionario_id,omitempty"`
	DataTransacao       time.Time `json:"data_transacao"`
	Combustivel         string    `json:"combustivel"`
	FormaPagamento      string    `json:"forma_pagamento"`
	Litros              float64   `json:"litros"`
	Valor               float64   `json:"valor"`
	Cashback            float64   `json:"cashback"`
	Pontos              int       `json:"pontos"`
	PorcentagemCashback float64   `json:"porcentagem_cashback"`
	Status              string    `json:"status"`
	DataCriacao         time.Time `json:"data_criacao"`
	NomeCompleto        string    `json:"nome_completo,omitempty"`
}

// AbastecimentoResponse resume o abastecimento recém-registrado
type AbastecimentoResponse struct {
	Mensagem  string              `json:"mensagem"`
	Transacao ResumoAbastecimento `json:"transacao"`
}

// ResumoAbastecimento é o resumo retornado ao funcionário
type ResumoAbastecimento struct {
	ID           string  `json:"id"`
	Cliente      string  `json:"cliente"`
	Combustivel  string  `json:"combustivel"`
	Litros       float64 `json:"litros"`
	Valor        float64 `json:"valor"`
	PontosGanhos int     `json:"pontos_ganhos"`
	TotalPontos  int     `json:"total_pontos"`
}

// EstatisticasResponse são os agregados administrativos dos últimos
// 30 dias
type EstatisticasResponse struct {
	TotalTransacoes int64   `json:"total_transacoes"`
	TotalVendas     float64 `json:"total_vendas"`
	TotalCashback   float64 `json:"total_cashback"`
	TotalPontos     int64   `json:"total_pontos"`
	ClientesAtivos  int64   `json:"clientes_ativos"`
}

// ToTransacaoResponse converte uma entidade Transaction para
// TransacaoResponse
func ToTransacaoResponse(tx *entities.Transaction) TransacaoResponse {
	return TransacaoResponse{
		ID:                  tx.ID,
		UsuarioID:           tx.UserID,
		FuncionarioID:       tx.EmployeeID,
		DataTransacao:       tx.Date,
		Combustivel:         string(tx.Fuel),
		FormaPagamento:      string(tx.PaymentMethod),
		Litros:              tx.Liters,
		Valor:               tx.Amount,
		Cashback:            tx.Cashback,
		Pontos:              tx.Points,
		PorcentagemCashback: tx.CashbackPercent,
		Status:              string(tx.Status),
		DataCriacao:         tx.CreatedAt,
	}
}

// ToTransacaoResponses converte uma lista de transações
func ToTransacaoResponses(txs []*entities.Transaction) []TransacaoResponse {
	responses := make([]TransacaoResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToTransacaoResponse(tx)
	}
	return responses
}

// ToTransacaoAdminResponses converte a listagem administrativa, com o
// nome do cliente
func ToTransacaoAdminResponses(txs []*repositories.TransactionWithCustomer) []TransacaoResponse {
	responses := make([]TransacaoResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToTransacaoResponse(&tx.Transaction)
		responses[i].NomeCompleto = tx.CustomerName
	}
	return responses
}

// ToEstatisticasResponse converte os agregados do repositório
func ToEstatisticasResponse(stats *repositories.TransactionStats) EstatisticasResponse {
	return EstatisticasResponse{
		TotalTransacoes: stats.TotalTransactions,
		TotalVendas:     stats.TotalSales,
		TotalCashback:   stats.TotalCashback,
		TotalPontos:     stats.TotalPoints,
		ClientesAtivos:  stats.ActiveCustomers,
	}
}
