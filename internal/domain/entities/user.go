package entities

import (
	"errors"
	"time"

	"github.com/flexilease/flexilease-backend/internal/domain/valueobjects"
)

// MinimumAge é a idade mínima para cadastro
const MinimumAge = 18

// AddressFallback preenche campos de endereço quando a consulta de CEP
// não retorna o dado
const AddressFallback = "N/A"

// User representa um usuário do sistema
type User struct {
	ID           string
	Name         string
	CPF          valueobjects.CPF
	Birth        time.Time
	Email        valueobjects.Email
	PasswordHash string
	CEP          string
	Qualified    Qualification
	Patio        string
	Complement   string
	Neighborhood string
	Locality     string
	UF           string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanReserve verifica se o usuário pode criar reservas
func (u *User) CanReserve() bool {
	return u.Qualified.CanReserve()
}

// AgeAt calcula a idade completa do usuário em uma data de referência
func (u *User) AgeAt(ref time.Time) int {
	age := ref.Year() - u.Birth.Year()
	if u.Birth.AddDate(age, 0, 0).After(ref) {
		age--
	}
	return age
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.CPF.String() == "" {
		return errors.New("cpf is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Birth.IsZero() {
		return errors.New("birth date is required")
	}

	if u.AgeAt(time.Now().UTC()) < MinimumAge {
		return errors.New("user must be at least 18 years old")
	}

	if u.CEP == "" {
		return errors.New("cep is required")
	}

	if !u.Qualified.IsValid() {
		return errors.New("qualified must be 'sim' or 'não'")
	}

	return nil
}
