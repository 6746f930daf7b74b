package postgres

import (
	"context"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistItemRepository struct {
	db *gorm.DB
}

// NewWishlistItemRepository is the constructor for wishlistItemRepository.
func NewWishlistItemRepository(db *gorm.DB) repository.WishlistItemRepository {
	return &wishlistItemRepository{db: db}
}

func (repo *wishlistItemRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	itemM := fromWishlistItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrWishlistNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrWishlistItemCreationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *wishlistItemRepository) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemMs []*model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order(newestItemsFirst).
		Find(&itemMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist items")
	}

	return toWishlistItemDomains(itemMs), nil
}

// --- Mapper Functions ---

func toWishlistItemDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	if data == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:          data.ID,
		WishlistID:  data.WishlistID,
		Title:       data.Title,
		Description: data.Description,
		URL:         data.URL,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func toWishlistItemDomains(data []*model.WishlistItemModel) []*entity.WishlistItem {
	items := make([]*entity.WishlistItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toWishlistItemDomain(itemM))
	}

	return items
}

func fromWishlistItemDomain(data *entity.WishlistItem) *model.WishlistItemModel {
	if data == nil {
		return nil
	}

	return &model.WishlistItemModel{
		ID:          data.ID,
		WishlistID:  data.WishlistID,
		Title:       data.Title,
		Description: data.Description,
		URL:         data.URL,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}
