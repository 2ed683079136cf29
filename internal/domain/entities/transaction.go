package entities

import (
	"errors"
	"time"
)

// FuelType representa o tipo de combustível abastecido
type FuelType string

const (
	FuelGasolinaComum     FuelType = "Gasolina Comum"
	FuelGasolinaAditivada FuelType = "Gasolina Aditivada"
	FuelDieselS500        FuelType = "Diesel S-500"
	FuelDieselS10         FuelType = "Diesel S-10"
)

// IsValid verifica se o combustível é um dos tipos aceitos
func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasolinaComum, FuelGasolinaAditivada, FuelDieselS500, FuelDieselS10:
		return true
	}
	return false
}

// PaymentMethod representa a forma de pagamento do abastecimento
type PaymentMethod string

const (
	PaymentDebit  PaymentMethod = "PIX/Dinheiro/Débito"
	PaymentCredit PaymentMethod = "Crédito"
)

// IsValid verifica se a forma de pagamento é aceita
func (p PaymentMethod) IsValid() bool {
	return p == PaymentDebit || p == PaymentCredit
}

// TransactionStatus representa o status de processamento da transação
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pendente"
	StatusProcessed TransactionStatus = "processado"
	StatusCancelled TransactionStatus = "cancelado"
)

// Transaction registra um abastecimento. Registros são imutáveis após a
// criação: o extrato é um log append-only.
type Transaction struct {
	ID              string
	UserID          string
	EmployeeID      *string
	Date            time.Time
	Fuel            FuelType
	PaymentMethod   PaymentMethod
	Liters          float64
	Amount          float64
	Cashback        float64
	Points          int
	CashbackPercent float64
	Status          TransactionStatus
	CreatedAt       time.Time
}

// Validate valida regras de negócio da entidade Transaction
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return errors.New("user id is required")
	}

	if !t.Fuel.IsValid() {
		return errors.New("invalid fuel type")
	}

	if !t.PaymentMethod.IsValid() {
		return errors.New("invalid payment method")
	}

	if t.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}

	if t.Cashback < 0 {
		return errors.New("cashback must not be negative")
	}

	return nil
}
