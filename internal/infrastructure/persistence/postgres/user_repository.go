package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ? AND ativo = true", id)
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	return r.findOne(ctx, "cpf = ? AND ativo = true", cpf)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ? AND ativo = true", email)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, args ...interface{}) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) UpdateBalanceAndPoints(ctx context.Context, id string, balance *float64, points *int) error {
	updates := map[string]interface{}{}
	if balance != nil {
		updates["saldo"] = *balance
	}
	if points != nil {
		updates["pontos"] = *points
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(ctx)
	return db.Model(&UserModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) CreditPoints(ctx context.Context, id string, points int) error {
	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("id = ?", id).
		Update("pontos", gorm.Expr("pontos + ?", points)).Error
}

func (r *UserRepository) ConvertPoints(ctx context.Context, id string, points int, value float64) (bool, error) {
	db := r.getDB(ctx)
	result := db.Model(&UserModel{}).
		Where("id = ? AND pontos >= ?", id, points).
		Updates(map[string]interface{}{
			"pontos": gorm.Expr("pontos - ?", points),
			"saldo":  gorm.Expr("saldo + ?", value),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) DebitBalance(ctx context.Context, id string, value float64) (bool, error) {
	db := r.getDB(ctx)
	result := db.Model(&UserModel{}).
		Where("id = ? AND saldo >= ?", id, value).
		Update("saldo", gorm.Expr("saldo - ?", value))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&UserModel{}).Where("role = ?", string(role)).Count(&count).Error
	return count, err
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	db := r.getDB(ctx)
	return db.Exec("DELETE FROM usuarios").Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email.String(),
		CPF:          user.CPF.String(),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Balance:      user.Balance,
		Points:       user.Points,
		Active:       user.Active,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	// Dados persistidos são confiáveis; o admin semeado tem CPF todo
	// zero, que NewCPF rejeitaria
	cpf := valueobjects.CPFFromTrusted(model.CPF)

	return &entities.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        email,
		CPF:          cpf,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		Balance:      model.Balance,
		Points:       model.Points,
		Active:       model.Active,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}
