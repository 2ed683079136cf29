package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// Usuários padrão semeados na inicialização e no reset
const (
	defaultAdminName     = "Administrador Sistema"
	defaultAdminEmail    = "admin@posto.com"
	defaultAdminCPF      = "00000000000"
	defaultAdminPassword = "Admin123"

	defaultEmployeeName     = "Funcionário Posto"
	defaultEmployeeEmail    = "funcionario@posto.com"
	defaultEmployeeCPF      = "12345678901"
	defaultEmployeePassword = "Admin123456"
)

// AdminService contém a semeadura de dados padrão e o reset
// administrativo completo
type AdminService struct {
	userRepo   repositories.UserRepository
	txRepo     repositories.TransactionRepository
	codeRepo   repositories.CashbackCodeRepository
	configRepo repositories.ConfigurationRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(
	userRepo repositories.UserRepository,
	txRepo repositories.TransactionRepository,
	codeRepo repositories.CashbackCodeRepository,
	configRepo repositories.ConfigurationRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		txRepo:     txRepo,
		codeRepo:   codeRepo,
		configRepo: configRepo,
		uow:        uow,
		logger:     logger,
	}
}

// Seed garante as configurações padrão e os usuários admin/funcionário
// de teste. Idempotente: linhas existentes não são alteradas.
func (s *AdminService) Seed(ctx context.Context) error {
	for _, config := range entities.DefaultConfigurations() {
		config.ID = uuid.NewString()
		if err := s.configRepo.Upsert(ctx, &config); err != nil {
			return err
		}
	}

	adminCount, err := s.userRepo.CountByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return err
	}
	if adminCount == 0 {
		if err := s.seedUser(ctx, defaultAdminName, defaultAdminEmail, defaultAdminCPF,
			defaultAdminPassword, entities.RoleAdmin); err != nil {
			return err
		}
		s.logger.Info("default admin created", "cpf", "000***")
	}

	employee, err := s.userRepo.FindByCPF(ctx, defaultEmployeeCPF)
	if err != nil {
		return err
	}
	if employee == nil {
		if err := s.seedUser(ctx, defaultEmployeeName, defaultEmployeeEmail, defaultEmployeeCPF,
			defaultEmployeePassword, entities.RoleEmployee); err != nil {
			return err
		}
		s.logger.Info("default employee created", "cpf", "123***")
	}

	return nil
}

// Reset apaga todas as linhas das quatro tabelas e reaplica a semeadura.
// A limpeza roda em uma única transação; a semeadura vem depois.
func (s *AdminService) Reset(ctx context.Context) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.codeRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.txRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.userRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		return s.configRepo.DeleteAll(txCtx)
	})
	if err != nil {
		return err
	}

	s.logger.Warn("database cleared by administrator")

	return s.Seed(ctx)
}

func (s *AdminService) seedUser(ctx context.Context, name, rawEmail, rawCPF, password string, role entities.Role) error {
	email, err := valueobjects.NewEmail(rawEmail)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		CPF:          valueobjects.CPFFromTrusted(rawCPF),
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}

	return s.userRepo.Create(ctx, user)
}
