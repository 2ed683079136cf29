package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCPF = errors.New("invalid cpf format")
)

// CPF é um value object para o CPF do usuário. A validação é estrutural:
// 11 dígitos, não todos iguais. Não há verificação dos dígitos
// verificadores.
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado. Pontuação e espaços são removidos
// antes da validação.
func NewCPF(cpf string) (CPF, error) {
	digits := stripNonDigits(cpf)

	if !isValidCPF(digits) {
		return CPF{}, ErrInvalidCPF
	}

	return CPF{value: digits}, nil
}

// CPFFromTrusted cria um CPF sem validação estrutural, para dados já
// persistidos ou semeados (o admin padrão usa um CPF todo zero, que a
// validação de cadastro rejeitaria).
func CPFFromTrusted(cpf string) CPF {
	return CPF{value: stripNonDigits(cpf)}
}

// String retorna os 11 dígitos do CPF
func (c CPF) String() string {
	return c.value
}

// Masked retorna o CPF parcialmente oculto, para uso em logs
func (c CPF) Masked() string {
	if len(c.value) < 3 {
		return "***"
	}
	return c.value[:3] + "***"
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais são inválidos
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return true
		}
	}
	return false
}
