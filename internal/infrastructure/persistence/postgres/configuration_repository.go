package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// ConfigurationRepository implementa repositories.ConfigurationRepository
type ConfigurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository cria um novo ConfigurationRepository
func NewConfigurationRepository(db *gorm.DB) repositories.ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Upsert insere a configuração ignorando conflitos de chave, para que a
// semeadura não sobrescreva valores ajustados em produção
func (r *ConfigurationRepository) Upsert(ctx context.Context, config *entities.Configuration) error {
	model := r.toModel(config)

	db := r.getDB(ctx)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoNothing: true,
	}).Create(model).Error
}

func (r *ConfigurationRepository) FindByKey(ctx context.Context, key string) (*entities.Configuration, error) {
	var model ConfigurationModel

	db := r.getDB(ctx)
	if err := db.Where("chave = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConfigurationRepository) FindAll(ctx context.Context) ([]*entities.Configuration, error) {
	var models []*ConfigurationModel

	db := r.getDB(ctx)
	if err := db.Order("chave").Find(&models).Error; err != nil {
		return nil, err
	}

	configs := make([]*entities.Configuration, 0, len(models))
	for _, model := range models {
		configs = append(configs, r.toEntity(model))
	}
	return configs, nil
}

func (r *ConfigurationRepository) DeleteAll(ctx context.Context) error {
	db := r.getDB(ctx)
	return db.Exec("DELETE FROM configuracoes").Error
}

func (r *ConfigurationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *ConfigurationRepository) toModel(config *entities.Configuration) *ConfigurationModel {
	return &ConfigurationModel{
		ID:          config.ID,
		Key:         config.Key,
		Value:       config.Value,
		Description: config.Description,
	}
}

func (r *ConfigurationRepository) toEntity(model *ConfigurationModel) *entities.Configuration {
	return &entities.Configuration{
		ID:          model.ID,
		Key:         model.Key,
		Value:       model.Value,
		Description: model.Description,
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
