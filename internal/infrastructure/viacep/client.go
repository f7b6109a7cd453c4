// Package viacep implementa o port de consulta de endereço por CEP
// usando a API pública ViaCEP (https://viacep.com.br).
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainerrors "github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
)

// Client consulta a ViaCEP. Implementa ports.PostalLookup.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um novo cliente ViaCEP
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// viaCEPResponse é o payload retornado pela API. CEPs inexistentes
// respondem 200 com {"erro": true}.
type viaCEPResponse struct {
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        bool   `json:"erro"`
}

// Lookup busca o endereço de um CEP. CEP desconhecido retorna
// domainerrors.ErrCEPNotFound; falhas de transporte ou respostas
// não-2xx são repassadas como erro de upstream.
func (c *Client) Lookup(ctx context.Context, cep string) (*ports.PostalAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: unexpected status %d for cep %s", resp.StatusCode, cep)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("viacep: decode response: %w", err)
	}

	if body.Erro {
		return nil, domainerrors.ErrCEPNotFound
	}

	return &ports.PostalAddress{
		Patio:        body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		Locality:     body.Localidade,
		UF:           body.UF,
	}, nil
}
