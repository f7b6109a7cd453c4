package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrCarNotFound         = errors.New("error.car_not_found")
	ErrReservationNotFound = errors.New("error.reservation_not_found")
	ErrEmailAlreadyExists  = errors.New("error.email_already_exists")
	ErrCPFAlreadyExists    = errors.New("error.cpf_already_exists")
	ErrInvalidCredentials  = errors.New("error.invalid_credentials")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
	ErrUserNotQualified    = errors.New("error.user_not_qualified")
	ErrUserDateConflict    = errors.New("error.user_date_conflict")
	ErrCarDateConflict     = errors.New("error.car_date_conflict")
	ErrCEPNotFound         = errors.New("error.cep_not_found")
	ErrEndBeforeStart      = errors.New("error.end_before_start")
	ErrNoAccessories       = errors.New("error.no_accessories")
	ErrDuplicateAccessory  = errors.New("error.duplicate_accessory")
)

// Domain errors
var (
	ErrInvalidEmail  = errors.New("error.invalid_email")
	ErrInvalidCPF    = errors.New("error.invalid_cpf")
	ErrInvalidDate   = errors.New("error.invalid_date")
	ErrInvalidID     = errors.New("error.invalid_id")
	ErrInvalidFilter = errors.New("error.invalid_filter")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeUpstream     = "/problems/upstream-error"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
