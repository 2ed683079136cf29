package entities

import (
	"errors"
	"time"
)

const (
	// CodeTTL é a janela de validade de um código a partir da criação
	CodeTTL = 30 * time.Minute

	// CodeLength é o tamanho do código alfanumérico gerado
	CodeLength = 8

	// MinCodeValue é o valor mínimo em reais para gerar um código
	MinCodeValue = 5.00
)

// CashbackCode representa um pedido pendente de resgate de cashback.
// O ciclo de vida é CREATED -> (USED | EXPIRED): criado pelo cliente,
// consumido no máximo uma vez por um funcionário. Expiração é calculada
// a partir de ExpiresAt, nunca gravada como transição de estado. O saldo
// do cliente só é debitado na validação, nunca na criação.
type CashbackCode struct {
	ID         string
	UserID     string
	Code       string
	Value      float64
	Used       bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
	UsedAt     *time.Time
	EmployeeID *string
}

// IsExpired verifica se o código expirou no instante informado
func (c *CashbackCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// IsRedeemable verifica se o código ainda pode ser resgatado
func (c *CashbackCode) IsRedeemable(now time.Time) bool {
	return !c.Used && !c.IsExpired(now)
}

// MarkUsed registra o consumo do código pelo funcionário informado
func (c *CashbackCode) MarkUsed(employeeID string, now time.Time) {
	c.Used = true
	c.UsedAt = &now
	c.EmployeeID = &employeeID
}

// Validate valida regras de negócio da entidade CashbackCode
func (c *CashbackCode) Validate() error {
	if c.UserID == "" {
		return errors.New("user id is required")
	}

	if len(c.Code) != CodeLength {
		return errors.New("code must have 8 characters")
	}

	if c.Value < MinCodeValue {
		return errors.New("value is below the minimum")
	}

	if !c.ExpiresAt.After(c.CreatedAt) {
		return errors.New("expiration must be after creation")
	}

	return nil
}
