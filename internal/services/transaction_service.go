package services

import (
	"context"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// statsWindowDays é a janela móvel das estatísticas administrativas
const statsWindowDays = 30

// TransactionService contém a lógica de extrato e agregação
type TransactionService struct {
	txRepo repositories.TransactionRepository
	logger ports.Logger

	now func() time.Time
}

// NewTransactionService cria um novo TransactionService
func NewTransactionService(txRepo repositories.TransactionRepository, logger ports.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
		now:    time.Now,
	}
}

// ListByUser retorna o extrato de um usuário, mais recente primeiro
func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	return s.txRepo.FindByUser(ctx, userID)
}

// ListAll retorna todas as transações com o nome do cliente, para a
// visão administrativa
func (s *TransactionService) ListAll(ctx context.Context) ([]*repositories.TransactionWithCustomer, error) {
	return s.txRepo.FindAll(ctx)
}

// Stats agrega os últimos 30 dias: total de transações, volume de
// vendas, cashback e pontos distribuídos, clientes distintos
func (s *TransactionService) Stats(ctx context.Context) (*repositories.TransactionStats, error) {
	since := s.now().AddDate(0, 0, -statsWindowDays)
	return s.txRepo.Stats(ctx, since)
}
