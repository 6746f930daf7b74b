package repository

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWishlistNotFound is returned when a wishlist is not found.
var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository defines the interface for wishlist persistence.
// List results are ordered newest first.
type WishlistRepository interface {
	// Create persists a new wishlist. Returns ErrUserNotFound if the owner is missing.
	Create(ctx context.Context, wishlist *entity.Wishlist) error

	// FindByID retrieves the bare wishlist row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)

	// FindDetailsByID retrieves the wishlist with its owner and items.
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)

	// List retrieves every wishlist with its owner and item count.
	List(ctx context.Context) ([]*entity.Wishlist, error)

	// ListByUser retrieves the wishlists owned by userID with item counts.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)
}

// WishlistItemRepository defines the interface for wishlist item persistence.
type WishlistItemRepository interface {
	// Create persists a new item. Returns ErrWishlistNotFound if the parent is missing.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// ListByWishlist retrieves the items of a wishlist, newest first.
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishlistItem, error)
}
