package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a titled list of wished-for items owned by a single user.
// IsPublic is stored but not enforced by the listing endpoints.
type Wishlist struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner.
	Title     string
	IsPublic  bool
	CreatedAt time.Time

	// Populated only by the read paths that join them.
	Owner      *UserSummary
	Items      []*WishlistItem
	ItemsCount int64
}

// IsOwnedBy reports whether userID owns the wishlist.
func (w *Wishlist) IsOwnedBy(userID uuid.UUID) bool {
	return w != nil && w.UserID == userID
}

// WishlistItem is a single wished-for thing, usually a product link.
type WishlistItem struct {
	ID          uuid.UUID
	WishlistID  uuid.UUID
	Title       string
	Description string
	URL         string
	ImageURL    string
	CreatedAt   time.Time
}
