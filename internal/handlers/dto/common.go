package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs),
// estendido com a lista de erros de validação por campo
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 com título e
// detalhe traduzidos
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Detail = T(c, detailKey, params...)
	problem.Instance = c.Request.URL.Path

	return &ErrorResponse{DefaultProblem: *problem}
}

// ValidationErrorsFromBinding converte os erros do validator usado
// pelo binding do Gin em erros de campo da resposta
func ValidationErrorsFromBinding(err error) []ValidationError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		out = append(out, ValidationError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Error(),
			Tag:     fieldErr.Tag(),
		})
	}
	return out
}

// Helpers para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) *ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 com a
// chave de detalhe informada
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) *ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		detailKey,
		404,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UpstreamErrorResponseI18n cria uma resposta 400 repassando a
// mensagem do serviço externo
func UpstreamErrorResponseI18n(c *gin.Context, message string) *ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/upstream-error",
		"error.upstream.title",
		"error.upstream.title",
		400,
	)
	response.Detail = message
	return response
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) *ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
