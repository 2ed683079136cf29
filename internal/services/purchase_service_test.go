package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

func newPurchaseFixture() (*PurchaseService, *fakeUserRepo, *fakeTransactionRepo, *entities.User, *entities.User) {
	userRepo := newFakeUserRepo()
	txRepo := newFakeTransactionRepo()
	service := NewPurchaseService(userRepo, txRepo, fakeUnitOfWork{}, noopLogger{})

	employee := &entities.User{
		ID:     uuid.NewString(),
		Name:   "Carlos Atendente",
		CPF:    valueobjects.CPFFromTrusted("98765432100"),
		Role:   entities.RoleEmployee,
		Active: true,
	}
	customer := &entities.User{
		ID:     uuid.NewString(),
		Name:   "Maria da Silva",
		CPF:    valueobjects.CPFFromTrusted("12345678901"),
		Role:   entities.RoleCustomer,
		Points: 40,
		Active: true,
	}
	userRepo.put(employee)
	userRepo.put(customer)

	return service, userRepo, txRepo, employee, customer
}

func TestRecordPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("credita o dobro do valor em pontos, arredondado para baixo", func(t *testing.T) {
		service, userRepo, txRepo, employee, customer := newPurchaseFixture()

		result, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    employee.ID,
			CustomerCPF:   customer.CPF.String(),
			Fuel:          entities.FuelGasolinaComum,
			PaymentMethod: entities.PaymentDebit,
			Liters:        8.5,
			Amount:        50.99,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if result.PointsEarned != 101 {
			t.Errorf("esperava 101 pontos, obteve %d", result.PointsEarned)
		}
		if result.TotalPoints != 141 {
			t.Errorf("esperava total 141, obteve %d", result.TotalPoints)
		}

		stored := userRepo.get(customer.ID)
		if stored.Points != 141 {
			t.Errorf("pontos persistidos: esperava 141, obteve %d", stored.Points)
		}
		if stored.Balance != 0 {
			t.Error("abastecimento não deveria alterar o saldo em reais")
		}

		txs, _ := txRepo.FindByUser(ctx, customer.ID)
		if len(txs) != 1 {
			t.Fatalf("esperava 1 transação, obteve %d", len(txs))
		}
		if txs[0].Status != entities.StatusProcessed {
			t.Errorf("status inesperado: %s", txs[0].Status)
		}
		if txs[0].EmployeeID == nil || *txs[0].EmployeeID != employee.ID {
			t.Error("transação deveria registrar o funcionário")
		}
	})

	t.Run("rejeita combustível desconhecido", func(t *testing.T) {
		service, _, _, employee, customer := newPurchaseFixture()

		_, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    employee.ID,
			CustomerCPF:   customer.CPF.String(),
			Fuel:          entities.FuelType("Querosene"),
			PaymentMethod: entities.PaymentDebit,
			Amount:        50,
		})
		if !stderrors.Is(err, errors.ErrInvalidFuel) {
			t.Errorf("esperava ErrInvalidFuel, obteve %v", err)
		}
	})

	t.Run("rejeita valor zero", func(t *testing.T) {
		service, _, _, employee, customer := newPurchaseFixture()

		_, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    employee.ID,
			CustomerCPF:   customer.CPF.String(),
			Fuel:          entities.FuelGasolinaComum,
			PaymentMethod: entities.PaymentCredit,
			Amount:        0,
		})
		if !stderrors.Is(err, errors.ErrInvalidAmount) {
			t.Errorf("esperava ErrInvalidAmount, obteve %v", err)
		}
	})

	t.Run("rejeita chamador que não é funcionário", func(t *testing.T) {
		service, _, _, _, customer := newPurchaseFixture()

		_, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    customer.ID,
			CustomerCPF:   customer.CPF.String(),
			Fuel:          entities.FuelGasolinaComum,
			PaymentMethod: entities.PaymentDebit,
			Amount:        50,
		})
		if !stderrors.Is(err, errors.ErrEmployeeOnly) {
			t.Errorf("esperava ErrEmployeeOnly, obteve %v", err)
		}
	})

	t.Run("rejeita CPF que não pertence a um cliente", func(t *testing.T) {
		service, _, _, employee, _ := newPurchaseFixture()

		_, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    employee.ID,
			CustomerCPF:   employee.CPF.String(),
			Fuel:          entities.FuelDieselS10,
			PaymentMethod: entities.PaymentDebit,
			Amount:        50,
		})
		if !stderrors.Is(err, errors.ErrCustomerNotFound) {
			t.Errorf("esperava ErrCustomerNotFound, obteve %v", err)
		}
	})

	t.Run("rejeita CPF desconhecido", func(t *testing.T) {
		service, _, _, employee, _ := newPurchaseFixture()

		_, err := service.RecordPurchase(ctx, RecordPurchaseInput{
			EmployeeID:    employee.ID,
			CustomerCPF:   "11122233344",
			Fuel:          entities.FuelDieselS500,
			PaymentMethod: entities.PaymentDebit,
			Amount:        50,
		})
		if !stderrors.Is(err, errors.ErrCustomerNotFound) {
			t.Errorf("esperava ErrCustomerNotFound, obteve %v", err)
		}
	})
}
