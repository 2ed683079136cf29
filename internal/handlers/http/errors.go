package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
)

// respondError traduz erros de domínio para o status HTTP e o corpo
// {"erro": mensagem} do contrato da API. Erros desconhecidos viram 500
// com mensagem genérica e vão para o log.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var tooMany *errors.TooManyAttemptsError
	if errs.As(err, &tooMany) {
		c.JSON(http.StatusTooManyRequests, dto.Erro(c, "error.too_many_attempts", map[string]interface{}{
			"Minutes": tooMany.RetryAfterMinutes,
		}))
		return
	}

	var validation *errors.ValidationError
	if errs.As(err, &validation) {
		c.JSON(http.StatusBadRequest, dto.Erro(c, validation.Message))
		return
	}

	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrCustomerNotFound),
		errs.Is(err, errors.ErrCodeNotRedeemable):
		c.JSON(http.StatusNotFound, dto.Erro(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Erro(c, err.Error()))

	case errs.Is(err, errors.ErrEmployeeOnly):
		c.JSON(http.StatusForbidden, dto.Erro(c, err.Error()))

	case errs.Is(err, errors.ErrNotACustomer),
		errs.Is(err, errors.ErrCPFAlreadyExists),
		errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrInvalidFuel),
		errs.Is(err, errors.ErrInvalidPayment),
		errs.Is(err, errors.ErrInvalidAmount),
		errs.Is(err, errors.ErrInsufficientBalance),
		errs.Is(err, errors.ErrInsufficientPoints),
		errs.Is(err, errors.ErrBelowMinimumConversion),
		errs.Is(err, errors.ErrBelowMinimumCode),
		errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrInvalidCPF):
		c.JSON(http.StatusBadRequest, dto.Erro(c, err.Error()))

	default:
		logger.Error("unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.Erro(c, "error.internal"))
	}
}
