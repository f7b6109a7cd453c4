package ports

import "context"

// PostalAddress é o resultado de uma consulta de CEP. Campos ausentes
// vêm como string vazia; o chamador decide o fallback.
type PostalAddress struct {
	Patio        string
	Complement   string
	Neighborhood string
	Locality     string
	UF           string
}

// PostalLookup define a interface para o serviço externo de
// enriquecimento de endereço por CEP
type PostalLookup interface {
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}
