package qrcode

import (
	"testing"

	"marketplace/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low letter", "L", qrcode.Low},
		{"Low word", "low", qrcode.Low},
		{"Medium word", "medium", qrcode.Medium},
		{"High letter", "Q", qrcode.High},
		{"Highest letter", "H", qrcode.Highest},
		{"Default", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_ServiceURL(t *testing.T) {
	service := newQRCodeService(256, "M", "https://rehaabit.com/")
	serviceID := uuid.New()

	assert.Equal(t, "https://rehaabit.com/services/"+serviceID.String(), service.ServiceURL(serviceID))
}

func TestQRCodeService_GenerateServiceQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://rehaabit.com",
	}})

	qrBytes, err := service.GenerateServiceQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateServiceQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := newQRCodeService(size, "M", "https://rehaabit.com")

		qrBytes, err := service.GenerateServiceQR(uuid.New())

		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseServiceQR(t *testing.T) {
	service := newQRCodeService(256, "M", "https://rehaabit.com")
	serviceID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		parsed, err := service.ParseServiceQR(service.ServiceURL(serviceID))

		require.NoError(t, err)
		assert.Equal(t, serviceID, parsed)
	})

	t.Run("not a service link", func(t *testing.T) {
		_, err := service.ParseServiceQR("https://rehaabit.com/categories/" + serviceID.String())

		assert.Error(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.ParseServiceQR("https://rehaabit.com/services/not-a-uuid")

		assert.Error(t, err)
	})
}
