package services

import (
	"context"
	"testing"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

func TestTransactionServiceStats(t *testing.T) {
	ctx := context.Background()
	txRepo := newFakeTransactionRepo()
	service := NewTransactionService(txRepo, noopLogger{})

	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	add := func(id, userID string, amount float64, points int, when time.Time) {
		t.Helper()
		err := txRepo.Create(ctx, &entities.Transaction{
			ID:            id,
			UserID:        userID,
			Date:          when,
			Fuel:          entities.FuelGasolinaComum,
			PaymentMethod: entities.PaymentDebit,
			Amount:        amount,
			Points:        points,
			Status:        entities.StatusProcessed,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	// Dentro da janela de 30 dias
	add("t1", "u1", 50.00, 100, now.AddDate(0, 0, -1))
	add("t2", "u1", 30.00, 60, now.AddDate(0, 0, -10))
	add("t3", "u2", 20.00, 40, now.AddDate(0, 0, -29))

	// Fora da janela
	add("t4", "u3", 100.00, 200, now.AddDate(0, 0, -31))

	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if stats.TotalTransactions != 3 {
		t.Errorf("esperava 3 transações, obteve %d", stats.TotalTransactions)
	}
	if stats.TotalSales != 100.00 {
		t.Errorf("esperava R$ 100,00 em vendas, obteve %v", stats.TotalSales)
	}
	if stats.TotalPoints != 200 {
		t.Errorf("esperava 200 pontos, obteve %d", stats.TotalPoints)
	}
	if stats.ActiveCustomers != 2 {
		t.Errorf("esperava 2 clientes distintos, obteve %d", stats.ActiveCustomers)
	}
}

func TestTransactionServiceListByUser(t *testing.T) {
	ctx := context.Background()
	txRepo := newFakeTransactionRepo()
	service := NewTransactionService(txRepo, noopLogger{})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"t1", "t2", "t3"} {
		err := txRepo.Create(ctx, &entities.Transaction{
			ID:            id,
			UserID:        "u1",
			Date:          base.Add(time.Duration(i) * time.Hour),
			Fuel:          entities.FuelDieselS10,
			PaymentMethod: entities.PaymentCredit,
			Amount:        10,
			Status:        entities.StatusProcessed,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	txs, err := service.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(txs) != 3 {
		t.Fatalf("esperava 3 transações, obteve %d", len(txs))
	}
	if txs[0].ID != "t3" {
		t.Errorf("extrato deveria vir do mais recente para o mais antigo, primeiro foi %s", txs[0].ID)
	}
}
