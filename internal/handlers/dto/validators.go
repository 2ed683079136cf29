package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

// RegisterCustomValidators registra as validações de campo específicas
// do domínio no engine de binding do Gin. Deve ser chamado uma vez na
// inicialização.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Tag "cpf": validação estrutural do CPF (11 dígitos, não todos
	// iguais), aceitando entrada com pontuação
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		_, err := valueobjects.NewCPF(fl.Field().String())
		return err == nil
	})
}

// BindingErro converte erros de binding/validação em uma resposta de
// erro traduzida. Erros de campo são concatenados como no contrato
// original (mensagens separadas por vírgula).
func BindingErro(c *gin.Context, err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Erro(c, "error.invalid_payload")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(c, fieldErr))
	}
	return ErrorResponse{Erro: strings.Join(messages, ", ")}
}

func fieldMessage(c *gin.Context, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "cpf":
		return T(c, "error.invalid_cpf")
	case "email":
		return T(c, "error.invalid_email")
	default:
		return T(c, "error.field_invalid", map[string]interface{}{
			"Field": strings.ToLower(fieldErr.Field()),
		})
	}
}
