package postalcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01001000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestViaCEPClient_Lookup(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{
		"cep": "01001-000",
		"logradouro": "Praça da Sé",
		"complemento": "lado ímpar",
		"bairro": "Sé",
		"localidade": "São Paulo",
		"uf": "SP"
	}`)
	client := NewViaCEPClient(server.URL, server.Client())

	address, err := client.Lookup(context.Background(), "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "01001000", address.ZipCode)
	assert.Equal(t, "Praça da Sé", address.Street)
	assert.Equal(t, "Sé", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestViaCEPClient_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"boolean flag", `{"erro": true}`},
		{"string flag", `{"erro": "true"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, tt.body)
			client := NewViaCEPClient(server.URL, server.Client())

			_, err := client.Lookup(context.Background(), "01001000")
			assert.True(t, errors.Is(err, service.ErrPostalCodeNotFound))
		})
	}
}

func TestViaCEPClient_InvalidCode(t *testing.T) {
	client := NewViaCEPClient("http://unused.invalid", http.DefaultClient)

	_, err := client.Lookup(context.Background(), "123")
	assert.True(t, errors.Is(err, ErrInvalidPostalCode))
}

func TestViaCEPClient_ServerError(t *testing.T) {
	server := newTestServer(t, http.StatusInternalServerError, `oops`)
	client := NewViaCEPClient(server.URL, server.Client())

	_, err := client.Lookup(context.Background(), "01001000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestViaCEPClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)
	client := NewViaCEPClient(server.URL, &http.Client{Timeout: 20 * time.Millisecond})

	_, err := client.Lookup(context.Background(), "01001000")
	assert.Error(t, err)
}

func TestNormalizeZipCode(t *testing.T) {
	assert.Equal(t, "01001000", NormalizeZipCode("01001-000"))
	assert.Equal(t, "01001000", NormalizeZipCode(" 01.001-000 "))
	assert.Equal(t, "", NormalizeZipCode("abc"))
}
