package postgres

import (
	"context"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	newestWishlistsFirst = "wishlists.created_at DESC, wishlists.id DESC"
	newestItemsFirst     = "wishlist_items.created_at DESC, wishlist_items.id DESC"

	wishlistSummaryColumns = "wishlists.*, (SELECT COUNT(*) FROM wishlist_items WHERE wishlist_items.wishlist_id = wishlists.id) AS items_count"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) Create(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlistM := fromWishlistDomain(wishlist)

	if err := repo.db.WithContext(ctx).Omit("User", "Items").Create(wishlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrWishlistCreationFailed.WrapMessage("missing required wishlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist")
	}

	wishlist.ID = wishlistM.ID
	wishlist.CreatedAt = wishlistM.CreatedAt

	return nil
}

func (repo *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&wishlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find wishlist")
	}

	return toWishlistDomain(&wishlistM), nil
}

// FindDetailsByID loads the wishlist together with its owner and items.
func (repo *wishlistRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(newestItemsFirst)
		}).
		Where("id = ?", id).
		Take(&wishlistM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load wishlist details")
	}

	wishlist := toWishlistDomain(&wishlistM)
	wishlist.Items = toWishlistItemDomains(wishlistM.Items)
	wishlist.ItemsCount = int64(len(wishlist.Items))

	return wishlist, nil
}

// List returns every wishlist. Visibility is not filtered.
func (repo *wishlistRepository) List(ctx context.Context) ([]*entity.Wishlist, error) {
	var wishlistMs []*model.WishlistModel
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Select(wishlistSummaryColumns).
		Preload("User").
		Order(newestWishlistsFirst).
		Find(&wishlistMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlists")
	}

	return toWishlistDomains(wishlistMs), nil
}

func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	var wishlistMs []*model.WishlistModel
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Select(wishlistSummaryColumns).
		Where("wishlists.user_id = ?", userID).
		Order(newestWishlistsFirst).
		Find(&wishlistMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user wishlists")
	}

	return toWishlistDomains(wishlistMs), nil
}

// --- Mapper Functions ---

func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	wishlist := &entity.Wishlist{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		IsPublic:   data.IsPublic,
		CreatedAt:  data.CreatedAt,
		ItemsCount: data.ItemsCount,
	}

	if data.User != nil {
		wishlist.Owner = toUserDomain(data.User).Summary()
	}

	if data.Items != nil {
		wishlist.Items = toWishlistItemDomains(data.Items)
	}

	return wishlist
}

func toWishlistDomains(data []*model.WishlistModel) []*entity.Wishlist {
	wishlists := make([]*entity.Wishlist, 0, len(data))
	for _, wishlistM := range data {
		wishlists = append(wishlists, toWishlistDomain(wishlistM))
	}

	return wishlists
}

func fromWishlistDomain(data *entity.Wishlist) *model.WishlistModel {
	if data == nil {
		return nil
	}

	return &model.WishlistModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
	}
}
