package services

import (
	"context"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de consulta e atualização de usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateBalance sobrescreve saldo e/ou pontos do usuário com valores
// absolutos. Campos nil não são alterados. Retorna o usuário atualizado.
func (s *UserService) UpdateBalance(ctx context.Context, id string, balance *float64, points *int) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if err := s.userRepo.UpdateBalanceAndPoints(ctx, id, balance, points); err != nil {
		return nil, err
	}

	if balance != nil {
		user.Balance = *balance
	}
	if points != nil {
		user.Points = *points
	}

	s.logger.Info("user balance updated", "id", id)
	return user, nil
}

// FindCustomerByCPF busca um cliente pelo CPF em nome de um funcionário.
// Somente funcionários podem consultar; o CPF precisa pertencer a um
// cliente.
func (s *UserService) FindCustomerByCPF(ctx context.Context, employeeID, rawCPF string) (*entities.User, error) {
	cpf, err := valueobjects.NewCPF(rawCPF)
	if err != nil {
		return nil, errors.ErrInvalidCPF
	}

	employee, err := s.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.HasPermission(entities.PermissionCustomerLookup) {
		return nil, errors.ErrEmployeeOnly
	}

	customer, err := s.userRepo.FindByCPF(ctx, cpf.String())
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}
	if !customer.IsCustomer() {
		return nil, errors.ErrNotACustomer
	}

	return customer, nil
}
