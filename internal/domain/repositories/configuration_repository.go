package repositories

import (
	"context"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
)

// ConfigurationRepository define a interface para persistência das
// configurações chave/valor do sistema.
type ConfigurationRepository interface {
	// Upsert grava a configuração, preservando linhas existentes com a
	// mesma chave (a semeadura é idempotente).
	Upsert(ctx context.Context, config *entities.Configuration) error

	FindByKey(ctx context.Context, key string) (*entities.Configuration, error)
	FindAll(ctx context.Context) ([]*entities.Configuration, error)
	DeleteAll(ctx context.Context) error
}
