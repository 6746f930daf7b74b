package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for wishlists.
type QRCodeService interface {
	// ShareURL returns the public link encoded into a wishlist's share code.
	ShareURL(wishlistID uuid.UUID) string

	// GenerateWishlistQR renders the share URL of wishlistID as a PNG image.
	GenerateWishlistQR(wishlistID uuid.UUID) ([]byte, error)
}
