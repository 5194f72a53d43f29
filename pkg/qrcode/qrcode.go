package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders fest-pass QR codes that gate scanners verify at entry.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GeneratePassQR returns a PNG QR code for an issued pass.
func (s *QRService) GeneratePassQR(passRef string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/pass/%s", s.baseURL, passRef)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
