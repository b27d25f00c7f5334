package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at the public page of a store
	GenerateStoreQR(slug string) ([]byte, error)

	// StoreURL returns the public URL encoded in the store QR code
	StoreURL(slug string) string
}
