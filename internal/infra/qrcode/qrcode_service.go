package qrcode

import (
	"net/url"
	"path"
	"strings"

	"cleanrecord/config"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"github.com/skip2/go-qrcode"
)

const watchPathPrefix = "/watch/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.ShareConfig) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch cfg.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(cfg.BaseURL, "/"),
		size:                 cfg.Size,
		errorCorrectionLevel: level,
	}
}

// WatchURL builds the public link of a session's player page.
func (s *qrcodeService) WatchURL(watchID string) string {
	return s.baseURL + watchPathPrefix + url.PathEscape(watchID)
}

// GenerateShareQR encodes the watch link of a session into a PNG image
func (s *qrcodeService) GenerateShareQR(watchID string) ([]byte, error) {
	if watchID == "" {
		return nil, errors.New("watch id is empty")
	}

	qrCode, err := qrcode.New(s.WatchURL(watchID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShareQR extracts the watch id from a scanned share link
func (s *qrcodeService) ParseShareQR(qrData string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse share link")
	}

	if !strings.HasPrefix(parsed.Path, watchPathPrefix) {
		return "", errors.Errorf("not a watch link: %s", qrData)
	}

	watchID := path.Base(parsed.Path)
	if watchID == "" || watchID == "watch" {
		return "", errors.Errorf("watch link has no id: %s", qrData)
	}

	return watchID, nil
}
