// File: services/qrcode_service.go
package services

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can swap it out.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// StandingsShareURL is the page the share QR code points at.
func StandingsShareURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/standings"
}

// GenerateQRCode encodes content as a square PNG. The code is drawn at the
// smaller of the two dimensions.
func GenerateQRCode(content string, width, height int, encoder QRCodeEncoder) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid dimensions: width and height must be positive")
	}
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	size := width
	if height < size {
		size = height
	}
	png, err := encoder(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
