// Package qrcode renders share codes for listings.
package qrcode

import (
	"net/url"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const servicePathSegment = "services"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// recoveryLevel accepts both the letter and the word form; anything else is medium.
func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ServiceURL returns the public page of a listing.
func (s *qrcodeService) ServiceURL(serviceID uuid.UUID) string {
	return s.baseURL + "/" + servicePathSegment + "/" + serviceID.String()
}

// GenerateServiceQR renders the listing URL as a PNG.
func (s *qrcodeService) GenerateServiceQR(serviceID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ServiceURL(serviceID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseServiceQR extracts the listing id from a scanned listing URL.
func (s *qrcodeService) ParseServiceQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != servicePathSegment {
		return uuid.Nil, errors.Errorf("not a service link: %s", qrData)
	}

	serviceID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse service ID")
	}

	return serviceID, nil
}
