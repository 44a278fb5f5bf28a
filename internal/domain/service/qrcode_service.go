package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateServiceQR renders a PNG QR code pointing at the public page of a listing
	GenerateServiceQR(serviceID uuid.UUID) ([]byte, error)

	// ServiceURL returns the public URL encoded in the QR code
	ServiceURL(serviceID uuid.UUID) string

	// ParseServiceQR extracts the listing id from scanned QR code data
	ParseServiceQR(qrData string) (uuid.UUID, error)
}
