package repositories

import (
	"context"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// UpdateBalanceAndPoints sobrescreve saldo e/ou pontos com valores
	// absolutos. Campos nil não são alterados.
	UpdateBalanceAndPoints(ctx context.Context, id string, balance *float64, points *int) error

	// CreditPoints soma pontos ao total do usuário.
	CreditPoints(ctx context.Context, id string, points int) error

	// ConvertPoints debita pontos e credita saldo em um único UPDATE
	// condicional. Retorna false quando o usuário não tem pontos
	// suficientes no momento da escrita.
	ConvertPoints(ctx context.Context, id string, points int, value float64) (bool, error)

	// DebitBalance subtrai do saldo em um UPDATE condicional. Retorna
	// false quando o saldo atual não cobre o valor.
	DebitBalance(ctx context.Context, id string, value float64) (bool, error)

	CountByRole(ctx context.Context, role entities.Role) (int64, error)
	DeleteAll(ctx context.Context) error
}
