// Package postalcode resolves Brazilian postal codes (CEP) through ViaCEP.
package postalcode

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"unicode"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultBaseURL = "https://viacep.com.br/ws"
	defaultTimeout = 5 * time.Second
	cepLength      = 8
)

// ErrInvalidPostalCode is returned for codes that are not eight digits.
var ErrInvalidPostalCode = errors.New("postal code must have 8 digits")

type viaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

type viaCEPResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	// Erro is true (or "true") when the code does not exist.
	Erro any `json:"erro"`
}

// New builds the lookup client from the postalCode config section.
func New(cfg *config.Config) service.PostalCodeLookup {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if cfg.PostalCode != nil {
		if cfg.PostalCode.BaseURL != "" {
			baseURL = cfg.PostalCode.BaseURL
		}
		if cfg.PostalCode.Timeout > 0 {
			timeout = cfg.PostalCode.Timeout
		}
	}

	return NewViaCEPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewViaCEPClient creates a client against baseURL.
func NewViaCEPClient(baseURL string, httpClient *http.Client) service.PostalCodeLookup {
	return &viaCEPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NormalizeZipCode strips everything but digits.
func NormalizeZipCode(zipCode string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, zipCode)
}

func (c *viaCEPClient) Lookup(ctx context.Context, zipCode string) (*entity.PostalAddress, error) {
	cep := NormalizeZipCode(zipCode)
	if len(cep) != cepLength {
		return nil, ErrInvalidPostalCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+cep+"/json/", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "postal code lookup failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidPostalCode
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("postal code lookup returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode postal code response")
	}

	if isErrorFlag(body.Erro) {
		return nil, service.ErrPostalCodeNotFound
	}

	return &entity.PostalAddress{
		ZipCode:      cep,
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}

func isErrorFlag(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
