package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR encodes the watch link of a session into a PNG image
	GenerateShareQR(watchID string) ([]byte, error)

	// ParseShareQR extracts the watch id from a scanned share link
	ParseShareQR(qrData string) (string, error)
}
