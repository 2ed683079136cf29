package repositories

import (
	"context"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// CashbackCodeRepository define a interface para persistência de códigos
// de resgate.
type CashbackCodeRepository interface {
	Create(ctx context.Context, code *entities.CashbackCode) error
	FindByCode(ctx context.Context, code string) (*entities.CashbackCode, error)

	// FindRedeemable busca um código com usado = false e expiração
	// posterior ao instante informado. Retorna nil quando não há linha
	// que satisfaça as três condições.
	FindRedeemable(ctx context.Context, code string, now time.Time) (*entities.CashbackCode, error)

	// MarkUsed grava usado = true, funcionário e instante de uso em um
	// UPDATE condicionado a usado = false. Retorna false quando o código
	// já havia sido consumido por outra requisição.
	MarkUsed(ctx context.Context, id string, employeeID string, usedAt time.Time) (bool, error)

	DeleteAll(ctx context.Context) error
}
