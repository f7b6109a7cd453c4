package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
)

var cpfTagPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}\-\d{2}$`)

// RegisterCustomValidators registra no binding do Gin as validações
// específicas do domínio: cpf, brdate (dd/mm/aaaa) e qualified
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpfTagPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("brdate", func(fl validator.FieldLevel) bool {
		_, err := dateutil.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	return v.RegisterValidation("qualified", func(fl validator.FieldLevel) bool {
		return entities.Qualification(fl.Field().String()).IsValid()
	})
}
