package handler

import (
	"time"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// WishlistResponse is a wishlist with whatever relations the read path loaded.
type WishlistResponse struct {
	ID         uuid.UUID               `json:"id"`
	UserID     uuid.UUID               `json:"userId"`
	Title      string                  `json:"title"`
	IsPublic   bool                    `json:"isPublic"`
	CreatedAt  time.Time               `json:"createdAt"`
	User       *UserResponse           `json:"user,omitempty"`
	Items      []*WishlistItemResponse `json:"items,omitempty"`
	ItemsCount int64                   `json:"itemsCount"`
}

// WishlistItemResponse is a single item.
type WishlistItemResponse struct {
	ID          uuid.UUID `json:"id"`
	WishlistID  uuid.UUID `json:"wishlistId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
}

func toOwnerResponse(owner *entity.UserSummary) *UserResponse {
	if owner == nil {
		return nil
	}

	return &UserResponse{ID: owner.ID, Name: owner.Name, Email: owner.Email, CreatedAt: owner.CreatedAt}
}

func toWishlistResponse(wishlist *entity.Wishlist) *WishlistResponse {
	resp := &WishlistResponse{
		ID:         wishlist.ID,
		UserID:     wishlist.UserID,
		Title:      wishlist.Title,
		IsPublic:   wishlist.IsPublic,
		CreatedAt:  wishlist.CreatedAt,
		User:       toOwnerResponse(wishlist.Owner),
		ItemsCount: wishlist.ItemsCount,
	}
	if wishlist.Items != nil {
		resp.Items = toItemResponses(wishlist.Items)
	}

	return resp
}

func toWishlistResponses(wishlists []*entity.Wishlist) []*WishlistResponse {
	out := make([]*WishlistResponse, 0, len(wishlists))
	for _, wishlist := range wishlists {
		out = append(out, toWishlistResponse(wishlist))
	}

	return out
}

func toItemResponse(item *entity.WishlistItem) *WishlistItemResponse {
	return &WishlistItemResponse{
		ID:          item.ID,
		WishlistID:  item.WishlistID,
		Title:       item.Title,
		Description: item.Description,
		URL:         item.URL,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []*entity.WishlistItem) []*WishlistItemResponse {
	out := make([]*WishlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}

	return out
}
