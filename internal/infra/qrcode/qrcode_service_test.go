package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://loja.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_StoreURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://loja.example.com/")

	assert.Equal(t, "https://loja.example.com/lojas/docesdaana", service.StoreURL("docesdaana"))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://loja.example.com")

	qrBytes, err := service.GenerateStoreQR("docesdaana")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://loja.example.com")

			qrBytes, err := service.GenerateStoreQR("docesdaana")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateStoreQR_EmptySlug(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://loja.example.com")

	_, err := service.GenerateStoreQR("")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	service := NewFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://a.example"},
	})
	assert.Equal(t, "https://a.example/lojas/x1", service.StoreURL("x1"))

	fallback := NewFromConfig(&config.Config{})
	assert.Equal(t, "/lojas/x1", fallback.StoreURL("x1"))
}
