package qrcode

import (
	"encoding/json"
	"strings"

	"weev/config"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	payloadTypeActivation = "activation"
	defaultSize           = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig is the Fx provider for the QR code service.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateActivationQR renders a PNG whose payload carries the activation code
func (s *qrcodeService) GenerateActivationQR(activationCode string) ([]byte, error) {
	code := entity.NormalizeActivationCode(activationCode)
	if code == "" {
		return nil, domainerrors.ErrActivationCodeRequired
	}

	jsonData, err := json.Marshal(QRCodeData{Type: payloadTypeActivation, Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseActivationQR accepts either the JSON payload written by GenerateActivationQR
// or a bare activation code, and returns the normalized code
func (s *qrcodeService) ParseActivationQR(qrData string) (string, error) {
	raw := strings.TrimSpace(qrData)
	if raw == "" {
		return "", domainerrors.ErrInvalidQRCode
	}

	if !strings.HasPrefix(raw, "{") {
		return entity.NormalizeActivationCode(raw), nil
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return "", domainerrors.ErrInvalidQRCode.WithDetails("malformed payload")
	}
	if data.Type != payloadTypeActivation {
		return "", domainerrors.ErrInvalidQRCode.WithDetails("unexpected payload type: " + data.Type)
	}

	code := entity.NormalizeActivationCode(data.Code)
	if code == "" {
		return "", domainerrors.ErrInvalidQRCode.WithDetails("missing activation code")
	}

	return code, nil
}
