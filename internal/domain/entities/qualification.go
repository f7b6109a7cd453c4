package entities

// Qualification representa a habilitação de motorista do usuário.
// O cadastro legado usa os literais "sim"/"não" e eles fazem parte do
// contrato da API, então são mantidos como estão.
type Qualification string

const (
	QualifiedYes Qualification = "sim"
	QualifiedNo  Qualification = "não"
)

// IsValid verifica se o valor é um dos literais aceitos
func (q Qualification) IsValid() bool {
	return q == QualifiedYes || q == QualifiedNo
}

// CanReserve verifica se a habilitação permite criar reservas
func (q Qualification) CanReserve() bool {
	return q == QualifiedYes
}
