package qrcode

import (
	"testing"

	"cleanrecord/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(level string) *qrcodeService {
	return NewQRCodeService(&config.ShareConfig{
		BaseURL:              "https://cleanrecord.example/",
		Size:                 256,
		ErrorCorrectionLevel: level,
	}).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_WatchURL(t *testing.T) {
	service := newTestService("M")

	assert.Equal(t, "https://cleanrecord.example/watch/pb-123", service.WatchURL("pb-123"))
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	service := newTestService("M")

	qrBytes, err := service.GenerateShareQR("pb-123")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])

	_, err = service.GenerateShareQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseShareQR(t *testing.T) {
	service := newTestService("M")

	watchID, err := service.ParseShareQR(service.WatchURL("pb-123"))
	require.NoError(t, err)
	assert.Equal(t, "pb-123", watchID)

	for _, invalid := range []string{
		"https://cleanrecord.example/pricing",
		"https://cleanrecord.example/watch/",
		"::not a url",
	} {
		_, err := service.ParseShareQR(invalid)
		assert.Error(t, err, invalid)
	}
}
