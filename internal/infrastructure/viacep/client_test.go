package viacep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "github.com/flexilease/flexilease-backend/internal/domain/errors"
)

func TestClient_Lookup(t *testing.T) {
	t.Run("retorna endereço para CEP válido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ws/01001000/json/" {
				t.Errorf("path inesperado: %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"logradouro": "Praça da Sé",
				"complemento": "lado ímpar",
				"bairro": "Sé",
				"localidade": "São Paulo",
				"uf": "SP"
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 2*time.Second)

		addr, err := client.Lookup(context.Background(), "01001000")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if addr.Neighborhood != "Sé" || addr.Locality != "São Paulo" || addr.UF != "SP" {
			t.Errorf("endereço inesperado: %+v", addr)
		}
	})

	t.Run("retorna ErrCEPNotFound para CEP inexistente", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"erro": true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 2*time.Second)

		_, err := client.Lookup(context.Background(), "99999999")
		if !errors.Is(err, domainerrors.ErrCEPNotFound) {
			t.Errorf("esperava ErrCEPNotFound, obteve %v", err)
		}
	})

	t.Run("erro para status não-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewClient(server.URL, 2*time.Second)

		if _, err := client.Lookup(context.Background(), "bogus"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("respeita cancelamento do contexto", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(server.URL, 2*time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := client.Lookup(ctx, "01001000"); err == nil {
			t.Error("esperava erro de contexto cancelado, obteve sucesso")
		}
	})
}
