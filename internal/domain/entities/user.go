package entities

import (
	"errors"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema: cliente, funcionário ou admin.
// Saldo (cashback em reais) e Points (pontos de fidelidade) são mutados
// apenas pelos fluxos de abastecimento, conversão e resgate.
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	CPF          valueobjects.CPF
	PasswordHash string
	Role         Role
	Balance      float64
	Points       int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCustomer verifica se o usuário é cliente
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsEmployee verifica se o usuário é funcionário
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// HasBalance verifica se o saldo atual cobre o valor informado
func (u *User) HasBalance(value float64) bool {
	return u.Balance >= value
}

// HasPoints verifica se o total de pontos cobre a quantidade informada
func (u *User) HasPoints(points int) bool {
	return u.Points >= points
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 3 {
		return errors.New("name must be at least 3 characters")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.CPF.String() == "" {
		return errors.New("cpf is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if u.Balance < 0 {
		return errors.New("balance must not be negative")
	}

	if u.Points < 0 {
		return errors.New("points must not be negative")
	}

	return nil
}
