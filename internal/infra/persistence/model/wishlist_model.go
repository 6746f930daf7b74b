package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistModel mirrors the 'wishlists' table.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	IsPublic  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`

	// ItemsCount is populated only by queries selecting an items_count column.
	ItemsCount int64 `gorm:"->;-:migration"`

	User  *UserModel           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items []*WishlistItemModel `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}

// BeforeCreate assigns a time-ordered id.
func (m *WishlistModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// WishlistItemModel mirrors the 'wishlist_items' table.
type WishlistItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WishlistID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	URL         string    `gorm:"column:url;type:text;not null;default:''"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// BeforeCreate assigns a time-ordered id.
func (m *WishlistItemModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every model in dependency order, for schema bootstrap in tests.
func All() []any {
	return []any{
		&UserModel{},
		&WishlistModel{},
		&WishlistItemModel{},
	}
}
