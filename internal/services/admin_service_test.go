package services

import (
	"context"
	"testing"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

func newAdminFixture() (*AdminService, *fakeUserRepo, *fakeTransactionRepo, *fakeCodeRepo, *fakeConfigRepo) {
	userRepo := newFakeUserRepo()
	txRepo := newFakeTransactionRepo()
	codeRepo := newFakeCodeRepo()
	configRepo := newFakeConfigRepo()

	service := NewAdminService(userRepo, txRepo, codeRepo, configRepo, fakeUnitOfWork{}, noopLogger{})
	return service, userRepo, txRepo, codeRepo, configRepo
}

func TestAdminServiceSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("cria configurações, admin e funcionário padrão", func(t *testing.T) {
		service, userRepo, _, _, configRepo := newAdminFixture()

		if err := service.Seed(ctx); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		configs, _ := configRepo.FindAll(ctx)
		if len(configs) != 5 {
			t.Errorf("esperava 5 configurações, obteve %d", len(configs))
		}

		minPurchase, _ := configRepo.FindByKey(ctx, entities.ConfigMinPurchase)
		if minPurchase == nil || minPurchase.Value != "20.00" {
			t.Error("valor_minimo_compra não foi semeado com 20.00")
		}

		admins, _ := userRepo.CountByRole(ctx, entities.RoleAdmin)
		if admins != 1 {
			t.Errorf("esperava 1 admin, obteve %d", admins)
		}

		employee, _ := userRepo.FindByCPF(ctx, "12345678901")
		if employee == nil || employee.Role != entities.RoleEmployee {
			t.Error("funcionário padrão não foi semeado")
		}
	})

	t.Run("é idempotente", func(t *testing.T) {
		service, userRepo, _, _, configRepo := newAdminFixture()

		if err := service.Seed(ctx); err != nil {
			t.Fatal(err)
		}
		if err := service.Seed(ctx); err != nil {
			t.Fatal(err)
		}

		admins, _ := userRepo.CountByRole(ctx, entities.RoleAdmin)
		if admins != 1 {
			t.Errorf("semeadura repetida duplicou o admin: %d", admins)
		}

		configs, _ := configRepo.FindAll(ctx)
		if len(configs) != 5 {
			t.Errorf("semeadura repetida duplicou configurações: %d", len(configs))
		}
	})
}

func TestAdminServiceReset(t *testing.T) {
	ctx := context.Background()

	service, userRepo, txRepo, codeRepo, _ := newAdminFixture()

	if err := service.Seed(ctx); err != nil {
		t.Fatal(err)
	}

	// Dados que o reset deve apagar
	customer := seedCustomer(t, userRepo, "98765432100", "Senha123")
	_ = txRepo.Create(ctx, &entities.Transaction{
		ID:            "t1",
		UserID:        customer.ID,
		Fuel:          entities.FuelGasolinaComum,
		PaymentMethod: entities.PaymentDebit,
		Amount:        50,
	})
	_ = codeRepo.Create(ctx, &entities.CashbackCode{ID: "c1", UserID: customer.ID, Code: "ABCD1234", Value: 10})

	if err := service.Reset(ctx); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if found, _ := userRepo.FindByCPF(ctx, "98765432100"); found != nil {
		t.Error("reset deveria apagar os clientes")
	}

	txs, _ := txRepo.FindByUser(ctx, customer.ID)
	if len(txs) != 0 {
		t.Error("reset deveria apagar as transações")
	}

	if found, _ := codeRepo.FindByCode(ctx, "ABCD1234"); found != nil {
		t.Error("reset deveria apagar os códigos")
	}

	// A semeadura volta após o reset
	admins, _ := userRepo.CountByRole(ctx, entities.RoleAdmin)
	if admins != 1 {
		t.Errorf("esperava admin recriado, obteve %d", admins)
	}
}
