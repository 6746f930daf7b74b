package impl

import (
	"context"
	"log/slog"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/domain/service"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	WishlistRepo repository.WishlistRepository
	ItemRepo     repository.WishlistItemRepository
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	userRepo     repository.UserRepository
	wishlistRepo repository.WishlistRepository
	itemRepo     repository.WishlistItemRepository
	qrCode       service.QRCodeService
	logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		userRepo:     params.UserRepo,
		wishlistRepo: params.WishlistRepo,
		itemRepo:     params.ItemRepo,
		qrCode:       params.QRCode,
		logger:       params.Logger,
	}
}

// CreateWishlist stores a wishlist for an existing owner.
func (srv *wishlistService) CreateWishlist(ctx context.Context, input usecase.CreateWishlistInput) (*entity.Wishlist, error) {
	owner, err := srv.findUser(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	wishlist := &entity.Wishlist{
		UserID:   input.OwnerID,
		Title:    input.Title,
		IsPublic: input.IsPublic,
	}
	if err := srv.wishlistRepo.Create(ctx, wishlist); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to create wishlist")
	}
	wishlist.Owner = owner.Summary()

	srv.logger.InfoContext(ctx, "Wishlist created",
		slog.String("wishlistID", wishlist.ID.String()),
		slog.String("ownerID", wishlist.UserID.String()),
	)

	return wishlist, nil
}

// ListWishlists returns every wishlist regardless of visibility.
func (srv *wishlistService) ListWishlists(ctx context.Context) ([]*entity.Wishlist, error) {
	wishlists, err := srv.wishlistRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlists")
	}

	return wishlists, nil
}

func (srv *wishlistService) GetWishlist(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := srv.wishlistRepo.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, mapWishlistErr(err, "failed to get wishlist")
	}

	return wishlist, nil
}

func (srv *wishlistService) ListWishlistItems(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishlistItem, error) {
	if _, err := srv.findWishlist(ctx, wishlistID); err != nil {
		return nil, err
	}

	items, err := srv.itemRepo.ListByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	return items, nil
}

// CreateWishlistItem enforces ownership only when the caller is known.
func (srv *wishlistService) CreateWishlistItem(ctx context.Context, input usecase.CreateWishlistItemInput) (*entity.WishlistItem, error) {
	wishlist, err := srv.findWishlist(ctx, input.WishlistID)
	if err != nil {
		return nil, err
	}

	if input.CallerID != nil && !wishlist.IsOwnedBy(*input.CallerID) {
		srv.logger.WarnContext(ctx, "Rejected item for foreign wishlist",
			slog.String("wishlistID", wishlist.ID.String()),
			slog.String("callerID", input.CallerID.String()),
		)

		return nil, errors.WithStack(domainerrors.ErrWishlistOwnershipViolation)
	}

	item := &entity.WishlistItem{
		WishlistID:  wishlist.ID,
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
		ImageURL:    input.ImageURL,
	}
	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, mapWishlistErr(err, "failed to create wishlist item")
	}

	return item, nil
}

func (srv *wishlistService) ListUserWishlists(ctx context.Context, userID uuid.UUID) (*usecase.UserWishlistsOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	wishlists, err := srv.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user wishlists")
	}

	return &usecase.UserWishlistsOutput{User: user, Wishlists: wishlists}, nil
}

func (srv *wishlistService) WishlistShareQR(ctx context.Context, wishlistID uuid.UUID, callerID *uuid.UUID) (*usecase.ShareQROutput, error) {
	wishlist, err := srv.findWishlist(ctx, wishlistID)
	if err != nil {
		return nil, err
	}

	if !wishlist.IsPublic && (callerID == nil || !wishlist.IsOwnedBy(*callerID)) {
		return nil, errors.WithStack(domainerrors.ErrWishlistPrivate)
	}

	png, err := srv.qrCode.GenerateWishlistQR(wishlist.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed.WithDetails(err.Error()), "failed to render share code")
	}

	return &usecase.ShareQROutput{URL: srv.qrCode.ShareURL(wishlist.ID), PNG: png}, nil
}

func (srv *wishlistService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *wishlistService) findWishlist(ctx context.Context, wishlistID uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := srv.wishlistRepo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, mapWishlistErr(err, "failed to find wishlist")
	}

	return wishlist, nil
}

func mapWishlistErr(err error, message string) error {
	if errors.Is(err, repository.ErrWishlistNotFound) {
		return errors.WithStack(domainerrors.ErrWishlistNotFound)
	}

	return errors.Wrap(err, message)
}
