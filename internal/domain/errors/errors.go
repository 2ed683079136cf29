package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrCustomerNotFound   = errors.New("error.customer_not_found")
	ErrNotACustomer       = errors.New("error.not_a_customer")
	ErrCPFAlreadyExists   = errors.New("error.cpf_already_exists")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrEmployeeOnly       = errors.New("error.employee_only")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
)

// Ledger errors
var (
	ErrInvalidFuel            = errors.New("error.invalid_fuel")
	ErrInvalidPayment         = errors.New("error.invalid_payment")
	ErrInvalidAmount          = errors.New("error.invalid_amount")
	ErrInsufficientBalance    = errors.New("error.insufficient_balance")
	ErrInsufficientPoints     = errors.New("error.insufficient_points")
	ErrBelowMinimumConversion = errors.New("error.below_minimum_conversion")
	ErrBelowMinimumCode       = errors.New("error.below_minimum_code")

	// ErrCodeNotRedeemable cobre código inexistente, expirado ou já usado.
	// A ambiguidade é intencional: o chamador não consegue distinguir os
	// três casos.
	ErrCodeNotRedeemable = errors.New("error.code_not_redeemable")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidCPF   = errors.New("error.invalid_cpf")
)

// TooManyAttemptsError indica bloqueio temporário de login por excesso
// de tentativas. RetryAfterMinutes alimenta a mensagem traduzida.
type TooManyAttemptsError struct {
	RetryAfterMinutes int
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("error.too_many_attempts: retry in %d minutes", e.RetryAfterMinutes)
}

// ValidationError carrega uma mensagem de validação por campo, usada
// nos erros de cadastro. Message é um message ID para i18n.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
