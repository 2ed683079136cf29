package repositories

import (
	"context"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// TransactionWithCustomer agrega a transação ao nome do cliente, para a
// listagem administrativa.
type TransactionWithCustomer struct {
	entities.Transaction
	CustomerName string
}

// TransactionStats são os agregados da janela administrativa. Nenhum
// valor derivado é armazenado; tudo é calculado na consulta.
type TransactionStats struct {
	TotalTransactions int64
	TotalSales        float64
	TotalCashback     float64
	TotalPoints       int64
	ActiveCustomers   int64
}

// TransactionRepository define a interface para persistência de
// transações. O extrato é append-only: não há Update nem Delete
// individual.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	FindByUser(ctx context.Context, userID string) ([]*entities.Transaction, error)
	FindAll(ctx context.Context) ([]*TransactionWithCustomer, error)

	// Stats agrega contagem, volume, cashback, pontos e clientes
	// distintos desde o instante informado.
	Stats(ctx context.Context, since time.Time) (*TransactionStats, error)

	DeleteAll(ctx context.Context) error
}
