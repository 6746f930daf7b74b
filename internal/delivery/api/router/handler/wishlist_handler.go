package handler

import (
	"log/slog"
	"net/http"

	"wishlist/internal/delivery/api/response"
	deliverycontext "wishlist/internal/delivery/context"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderShareURL carries the encoded URL next to a QR image.
const HeaderShareURL = "X-Share-Url"

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves wishlist and item endpoints.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// CreateWishlistRequest represents the request body for creating a wishlist
type CreateWishlistRequest struct {
	Title    string `json:"title" validate:"required"`
	IsPublic bool   `json:"isPublic"`
}

// CreateWishlistItemRequest represents the request body for adding an item
type CreateWishlistItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}

// ListWishlists handles GET /api/wishlists
func (h *WishlistHandler) ListWishlists(c echo.Context) error {
	wishlists, err := h.wishlistUC.ListWishlists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"wishlists": toWishlistResponses(wishlists)})
}

// CreateWishlist handles POST /api/wishlists for the authenticated caller
func (h *WishlistHandler) CreateWishlist(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req CreateWishlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.CreateWishlist(c.Request().Context(), usecase.CreateWishlistInput{
		OwnerID:  callerID,
		Title:    req.Title,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"wishlist": toWishlistResponse(wishlist)})
}

// GetWishlist handles GET /api/wishlists/:id
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"wishlist": toWishlistResponse(wishlist)})
}

// ListWishlistItems handles GET /api/wishlists/:id/items
func (h *WishlistHandler) ListWishlistItems(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.wishlistUC.ListWishlistItems(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"wishlistId": id,
		"items":      toItemResponses(items),
	})
}

// CreateWishlistItem handles POST /api/wishlists/:id/items. Only the owner may add items.
func (h *WishlistHandler) CreateWishlistItem(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateWishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.wishlistUC.CreateWishlistItem(c.Request().Context(), usecase.CreateWishlistItemInput{
		WishlistID:  id,
		CallerID:    &callerID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"item": toItemResponse(item)})
}

// ListUserWishlists handles GET /api/users/:userId/wishlists
func (h *WishlistHandler) ListUserWishlists(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	out, err := h.wishlistUC.ListUserWishlists(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":      toUserResponse(out.User),
		"wishlists": toWishlistResponses(out.Wishlists),
	})
}

// WishlistShareQR handles GET /api/wishlists/:id/qr and returns a PNG.
func (h *WishlistHandler) WishlistShareQR(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var callerID *uuid.UUID
	if userID, ok := deliverycontext.GetCallerID(c); ok {
		callerID = &userID
	}

	out, err := h.wishlistUC.WishlistShareQR(c.Request().Context(), id, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(HeaderShareURL, out.URL)

	return response.PNG(c, out.PNG)
}
