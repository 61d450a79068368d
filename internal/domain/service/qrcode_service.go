package service

// QRCodeService defines the interface for activation QR code generation and parsing
type QRCodeService interface {
	// GenerateActivationQR renders a PNG QR code carrying the product's activation code
	GenerateActivationQR(activationCode string) ([]byte, error)

	// ParseActivationQR extracts the activation code from scanned QR data
	ParseActivationQR(qrData string) (string, error)
}
