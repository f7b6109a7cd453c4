package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
)

// respondError traduz erros de domínio para respostas RFC 7807. Os
// sentinelas carregam a própria chave de i18n como mensagem, então o
// texto do erro vira a chave de detalhe da resposta.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrCarNotFound),
		errs.Is(err, errors.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrCPFAlreadyExists),
		errs.Is(err, errors.ErrUserDateConflict),
		errs.Is(err, errors.ErrCarDateConflict),
		errs.Is(err, errors.ErrDuplicateAccessory):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrUserNotQualified),
		errs.Is(err, errors.ErrEndBeforeStart),
		errs.Is(err, errors.ErrNoAccessories),
		errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrInvalidCPF),
		errs.Is(err, errors.ErrInvalidDate),
		errs.Is(err, errors.ErrInvalidID),
		errs.Is(err, errors.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, err.Error()))

	default:
		var domainErr *errors.DomainError
		if errs.As(err, &domainErr) {
			respondDomainError(c, domainErr)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondDomainError responde erros de domínio enriquecidos, que já
// trazem o tipo de problema e a mensagem pronta
func respondDomainError(c *gin.Context, domainErr *errors.DomainError) {
	switch domainErr.Type {
	case errors.ProblemTypeValidation:
		response := dto.ValidationErrorResponseI18n(c, nil)
		response.Detail = domainErr.Message
		c.JSON(http.StatusBadRequest, response)
	case errors.ProblemTypeUpstream:
		c.JSON(http.StatusBadRequest, dto.UpstreamErrorResponseI18n(c, domainErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
