package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// CashbackCodeRepository implementa repositories.CashbackCodeRepository
type CashbackCodeRepository struct {
	db *gorm.DB
}

// NewCashbackCodeRepository cria um novo CashbackCodeRepository
func NewCashbackCodeRepository(db *gorm.DB) repositories.CashbackCodeRepository {
	return &CashbackCodeRepository{db: db}
}

func (r *CashbackCodeRepository) Create(ctx context.Context, code *entities.CashbackCode) error {
	model := r.toModel(code)

	db := r.getDB(ctx)
	return db.Create(model).Error
}

func (r *CashbackCodeRepository) FindByCode(ctx context.Context, code string) (*entities.CashbackCode, error) {
	var model CashbackCodeModel

	db := r.getDB(ctx)
	if err := db.Where("codigo = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CashbackCodeRepository) FindRedeemable(ctx context.Context, code string, now time.Time) (*entities.CashbackCode, error) {
	var model CashbackCodeModel

	db := r.getDB(ctx)
	err := db.Where("codigo = ? AND usado = false AND data_expiracao > ?", code, now.Unix()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CashbackCodeRepository) MarkUsed(ctx context.Context, id string, employeeID string, usedAt time.Time) (bool, error) {
	db := r.getDB(ctx)
	result := db.Model(&CashbackCodeModel{}).
		Where("id = ? AND usado = false", id).
		Updates(map[string]interface{}{
			"usado":          true,
			"data_uso":       usedAt.Unix(),
			"funcionario_id": employeeID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CashbackCodeRepository) DeleteAll(ctx context.Context) error {
	db := r.getDB(ctx)
	return db.Exec("DELETE FROM codigos_cashback").Error
}

func (r *CashbackCodeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *CashbackCodeRepository) toModel(code *entities.CashbackCode) *CashbackCodeModel {
	var usedAt *int64
	if code.UsedAt != nil {
		ts := code.UsedAt.Unix()
		usedAt = &ts
	}

	return &CashbackCodeModel{
		ID:         code.ID,
		UserID:     code.UserID,
		Code:       code.Code,
		Value:      code.Value,
		Used:       code.Used,
		CreatedAt:  code.CreatedAt.Unix(),
		ExpiresAt:  code.ExpiresAt.Unix(),
		UsedAt:     usedAt,
		EmployeeID: code.EmployeeID,
	}
}

func (r *CashbackCodeRepository) toEntity(model *CashbackCodeModel) *entities.CashbackCode {
	var usedAt *time.Time
	if model.UsedAt != nil {
		ts := time.Unix(*model.UsedAt, 0)
		usedAt = &ts
	}

	return &entities.CashbackCode{
		ID:         model.ID,
		UserID:     model.UserID,
		Code:       model.Code,
		Value:      model.Value,
		Used:       model.Used,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		ExpiresAt:  time.Unix(model.ExpiresAt, 0),
		UsedAt:     usedAt,
		EmployeeID: model.EmployeeID,
	}
}
