package usecase

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWishlistInput defines the data required to create a wishlist.
type CreateWishlistInput struct {
	OwnerID  uuid.UUID
	Title    string
	IsPublic bool
}

// CreateWishlistItemInput defines the data required to add an item.
// CallerID is nil when the request carried no identity.
type CreateWishlistItemInput struct {
	WishlistID  uuid.UUID
	CallerID    *uuid.UUID
	Title       string
	Description string
	URL         string
	ImageURL    string
}

// UserWishlistsOutput is a user together with their wishlist summaries.
type UserWishlistsOutput struct {
	User      *entity.User
	Wishlists []*entity.Wishlist
}

// ShareQROutput is a rendered wishlist share code.
type ShareQROutput struct {
	URL string
	PNG []byte
}

// WishlistUsecase defines the wishlist operations shared by the REST and GraphQL surfaces.
type WishlistUsecase interface {
	CreateWishlist(ctx context.Context, input CreateWishlistInput) (*entity.Wishlist, error)
	ListWishlists(ctx context.Context) ([]*entity.Wishlist, error)
	GetWishlist(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)
	ListWishlistItems(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, input CreateWishlistItemInput) (*entity.WishlistItem, error)
	ListUserWishlists(ctx context.Context, userID uuid.UUID) (*UserWishlistsOutput, error)

	// WishlistShareQR renders a share code. Private wishlists are only shared by their owner.
	WishlistShareQR(ctx context.Context, wishlistID uuid.UUID, callerID *uuid.UUID) (*ShareQROutput, error)
}
