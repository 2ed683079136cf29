package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// codeAlphabet é o alfabeto dos códigos de resgate (sem ambiguidade de
// minúsculas; o cliente digita o código para o funcionário)
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts limita as tentativas de gerar um código ainda não usado
const maxCodeAttempts = 5

// WalletService contém as regras do ledger de cashback/pontos: conversão
// de pontos e ciclo de vida dos códigos de resgate.
type WalletService struct {
	userRepo repositories.UserRepository
	codeRepo repositories.CashbackCodeRepository
	uow      ports.UnitOfWork
	logger   ports.Logger

	now func() time.Time
}

// NewWalletService cria um novo WalletService
func NewWalletService(
	userRepo repositories.UserRepository,
	codeRepo repositories.CashbackCodeRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *WalletService {
	return &WalletService{
		userRepo: userRepo,
		codeRepo: codeRepo,
		uow:      uow,
		logger:   logger,
		now:      time.Now,
	}
}

// ConversionResult resume uma conversão de pontos em cashback
type ConversionResult struct {
	PointsConverted int
	CashbackEarned  float64
	NewBalance      float64
	NewPoints       int
}

// ConvertPoints converte pontos em saldo à taxa fixa de 100 pontos por
// R$ 1,00. O débito de pontos e o crédito de saldo acontecem em um único
// UPDATE condicional: se os pontos tiverem caído abaixo da quantidade
// entre a leitura e a escrita, nada é alterado.
func (s *WalletService) ConvertPoints(ctx context.Context, userID string, points int) (*ConversionResult, error) {
	if points < entities.MinPointsConversion {
		return nil, errors.ErrBelowMinimumConversion
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if !user.HasPoints(points) {
		return nil, errors.ErrInsufficientPoints
	}

	value := entities.CashbackForPoints(points)

	ok, err := s.userRepo.ConvertPoints(ctx, userID, points, value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrInsufficientPoints
	}

	s.logger.Info("points converted",
		"user", userID,
		"points", points,
		"value", value,
	)

	return &ConversionResult{
		PointsConverted: points,
		CashbackEarned:  value,
		NewBalance:      user.Balance + value,
		NewPoints:       user.Points - points,
	}, nil
}

// CreateCode gera um código de resgate para o valor pedido. O saldo não
// é debitado aqui; o débito acontece apenas na validação pelo
// funcionário. O código expira 30 minutos após a criação.
func (s *WalletService) CreateCode(ctx context.Context, userID string, value float64) (*entities.CashbackCode, error) {
	if value < entities.MinCodeValue {
		return nil, errors.ErrBelowMinimumCode
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if !user.HasBalance(value) {
		return nil, errors.ErrInsufficientBalance
	}

	codeStr, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	code := &entities.CashbackCode{
		ID:        uuid.NewString(),
		UserID:    userID,
		Code:      codeStr,
		Value:     value,
		Used:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(entities.CodeTTL),
	}

	if err := code.Validate(); err != nil {
		return nil, err
	}

	if err := s.codeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	s.logger.Info("cashback code created",
		"user", userID,
		"code", codeStr,
		"value", value,
	)

	return code, nil
}

// RedemptionResult resume um resgate validado
type RedemptionResult struct {
	CodeID       string
	CustomerName string
	Value        float64
	NewBalance   float64
}

// RedeemCode valida e consome um código em nome de um funcionário.
// A busca exige usado = false e expiração futura; a ausência de linha
// responde com um único erro que não distingue código errado, expirado
// ou já usado. O saldo do dono é reavaliado no momento do resgate, não
// no da criação. A marcação de uso e o débito do saldo rodam na mesma
// transação, ambos como UPDATEs condicionais: duas validações
// concorrentes do mesmo código não podem consumi-lo duas vezes.
func (s *WalletService) RedeemCode(ctx context.Context, employeeID, codeStr string) (*RedemptionResult, error) {
	employee, err := s.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.HasPermission(entities.PermissionCodeValidate) {
		return nil, errors.ErrEmployeeOnly
	}

	var result *RedemptionResult

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		now := s.now()

		code, err := s.codeRepo.FindRedeemable(txCtx, codeStr, now)
		if err != nil {
			return err
		}
		if code == nil {
			return errors.ErrCodeNotRedeemable
		}

		owner, err := s.userRepo.FindByID(txCtx, code.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.ErrCodeNotRedeemable
		}

		if !owner.HasBalance(code.Value) {
			return errors.ErrInsufficientBalance
		}

		used, err := s.codeRepo.MarkUsed(txCtx, code.ID, employeeID, now)
		if err != nil {
			return err
		}
		if !used {
			// Outra requisição consumiu o código entre a busca e a marcação
			return errors.ErrCodeNotRedeemable
		}

		debited, err := s.userRepo.DebitBalance(txCtx, owner.ID, code.Value)
		if err != nil {
			return err
		}
		if !debited {
			return errors.ErrInsufficientBalance
		}

		result = &RedemptionResult{
			CodeID:       code.ID,
			CustomerName: owner.Name,
			Value:        code.Value,
			NewBalance:   owner.Balance - code.Value,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cashback code redeemed",
		"code", codeStr,
		"employee", employeeID,
		"value", result.Value,
	)

	return result, nil
}

// generateUniqueCode sorteia códigos até encontrar um livre
func (s *WalletService) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := randomCode(entities.CodeLength)
		if err != nil {
			return "", err
		}

		existing, err := s.codeRepo.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique code after %d attempts", maxCodeAttempts)
}

// randomCode gera um código alfanumérico com crypto/rand
func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
