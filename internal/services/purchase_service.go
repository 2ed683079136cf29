package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// PurchaseService registra abastecimentos e o acúmulo de pontos
type PurchaseService struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
	uow      ports.UnitOfWork
	logger   ports.Logger

	now func() time.Time
}

// NewPurchaseService cria um novo PurchaseService
func NewPurchaseService(
	userRepo repositories.UserRepository,
	txRepo repositories.TransactionRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PurchaseService {
	return &PurchaseService{
		userRepo: userRepo,
		txRepo:   txRepo,
		uow:      uow,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordPurchaseInput representa os dados de um abastecimento
type RecordPurchaseInput struct {
	EmployeeID    string
	CustomerCPF   string
	Fuel          entities.FuelType
	PaymentMethod entities.PaymentMethod
	Liters        float64
	Amount        float64
}

// PurchaseResult resume o abastecimento registrado
type PurchaseResult struct {
	Transaction  *entities.Transaction
	CustomerName string
	PointsEarned int
	TotalPoints  int
}

// RecordPurchase valida o abastecimento, calcula os pontos (sempre
// arredondados para baixo) e grava a transação junto com o crédito de
// pontos em uma única transação de banco. O saldo em reais não é tocado
// por este fluxo.
func (s *PurchaseService) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*PurchaseResult, error) {
	if !input.Fuel.IsValid() {
		return nil, errors.ErrInvalidFuel
	}
	if !input.PaymentMethod.IsValid() {
		return nil, errors.ErrInvalidPayment
	}
	if input.Amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	cpf, err := valueobjects.NewCPF(input.CustomerCPF)
	if err != nil {
		return nil, errors.ErrInvalidCPF
	}

	employee, err := s.userRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.HasPermission(entities.PermissionPurchaseRecord) {
		return nil, errors.ErrEmployeeOnly
	}

	customer, err := s.userRepo.FindByCPF(ctx, cpf.String())
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsCustomer() {
		return nil, errors.ErrCustomerNotFound
	}

	points := entities.PointsForPurchase(input.Amount)

	tx := &entities.Transaction{
		ID:            uuid.NewString(),
		UserID:        customer.ID,
		EmployeeID:    &employee.ID,
		Date:          s.now(),
		Fuel:          input.Fuel,
		PaymentMethod: input.PaymentMethod,
		Liters:        input.Liters,
		Amount:        input.Amount,
		Cashback:      0,
		Points:        points,
		Status:        entities.StatusProcessed,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.txRepo.Create(txCtx, tx); err != nil {
			return err
		}
		return s.userRepo.CreditPoints(txCtx, customer.ID, points)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase recorded",
		"customer", customer.ID,
		"employee", employee.ID,
		"amount", input.Amount,
		"points", points,
	)

	return &PurchaseResult{
		Transaction:  tx,
		CustomerName: customer.Name,
		PointsEarned: points,
		TotalPoints:  customer.Points + points,
	}, nil
}
