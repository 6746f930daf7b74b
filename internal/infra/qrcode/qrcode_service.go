package qrcode

import (
	"net/url"
	"strings"

	"wishlist/config"
	"wishlist/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:4000"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the share code renderer from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShareURL returns {baseURL}/wishlists/{id}.
func (s *qrcodeService) ShareURL(wishlistID uuid.UUID) string {
	link, err := url.JoinPath(s.baseURL, "wishlists", wishlistID.String())
	if err != nil {
		return s.baseURL + "/wishlists/" + wishlistID.String()
	}

	return link
}

// GenerateWishlistQR encodes the wishlist share URL as a PNG.
func (s *qrcodeService) GenerateWishlistQR(wishlistID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareURL(wishlistID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
