package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"wishlist/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	id := uuid.MustParse("0190a6c2-7d7e-7c3a-9f1b-2a3b4c5d6e7f")

	svc := newQRCodeService(256, "M", "https://wish.example.com/")
	assert.Equal(t, "https://wish.example.com/wishlists/0190a6c2-7d7e-7c3a-9f1b-2a3b4c5d6e7f", svc.ShareURL(id))

	defaults := NewQRCodeService(&config.Config{})
	assert.Equal(t, "http://localhost:4000/wishlists/0190a6c2-7d7e-7c3a-9f1b-2a3b4c5d6e7f", defaults.ShareURL(id))
}

func TestQRCodeService_GenerateWishlistQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: "M"}})

			pngBytes, err := svc.GenerateWishlistQR(uuid.Must(uuid.NewV7()))
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}
