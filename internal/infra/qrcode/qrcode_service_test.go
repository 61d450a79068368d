package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"weev/config"
	domainerrors "weev/internal/domain/errors"

	"github.com/pkg/errors"
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
		{"Non-positive size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, 128, svc.size)
}

func TestQRCodeService_GenerateActivationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateActivationQR(" weev-abc12345 ")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateActivationQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateActivationQR("   ")
	assert.True(t, errors.Is(err, domainerrors.ErrActivationCodeRequired))
}

func TestQRCodeService_ParseActivationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Type: "activation", Code: "weev-abc12345"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "json payload", input: string(payload), want: "WEEV-ABC12345"},
		{name: "bare code", input: "  weev-xyz98765 ", want: "WEEV-XYZ98765"},
		{name: "empty", input: "  ", wantErr: true},
		{name: "malformed json", input: "{not json", wantErr: true},
		{name: "wrong type", input: `{"type":"subscription","code":"WEEV-1"}`, wantErr: true},
		{name: "missing code", input: `{"type":"activation","code":" "}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseActivationQR(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
