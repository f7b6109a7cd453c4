package valueobjects

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidCPF = errors.New("invalid cpf format")
)

// O cadastro exige o CPF já formatado (NNN.NNN.NNN-NN); dígitos
// verificadores não são conferidos, apenas o formato.
var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}\-\d{2}$`)

// CPF é um value object para o documento brasileiro de pessoa física
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado
func NewCPF(cpf string) (CPF, error) {
	if !cpfPattern.MatchString(cpf) {
		return CPF{}, ErrInvalidCPF
	}

	return CPF{value: cpf}, nil
}

// String retorna o valor formatado do CPF
func (c CPF) String() string {
	return c.value
}
