package postgres

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repositories struct {
	users     repository.UserRepository
	wishlists repository.WishlistRepository
	items     repository.WishlistItemRepository
	db        *gorm.DB
}

func newRepositories(t *testing.T) *repositories {
	t.Helper()

	db := testdb.New(t)

	return &repositories{
		users:     NewUserRepository(db),
		wishlists: NewWishlistRepository(db),
		items:     NewWishlistItemRepository(db),
		db:        db,
	}
}

func (r *repositories) createUser(t *testing.T, name, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: email, PasswordHash: "hash"}
	require.NoError(t, r.users.Create(context.Background(), user))

	return user
}

func (r *repositories) createWishlist(t *testing.T, owner uuid.UUID, title string) *entity.Wishlist {
	t.Helper()

	wishlist := &entity.Wishlist{UserID: owner, Title: title}
	require.NoError(t, r.wishlists.Create(context.Background(), wishlist))

	return wishlist
}

func (r *repositories) createItem(t *testing.T, wishlistID uuid.UUID, title string) *entity.WishlistItem {
	t.Helper()

	item := &entity.WishlistItem{WishlistID: wishlistID, Title: title, Description: "d", URL: "https://example.com/" + title}
	require.NoError(t, r.items.Create(context.Background(), item))

	return item
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repos := newRepositories(t)
	ctx := context.Background()

	user := repos.createUser(t, "Alice", "alice@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)
	assert.Equal(t, "hash", byID.PasswordHash)

	byEmail, err := repos.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repos.users.FindByID(ctx, uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repos.users.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repos := newRepositories(t)

	repos.createUser(t, "Alice", "alice@example.com")

	err := repos.users.Create(context.Background(), &entity.User{Name: "Other", Email: "alice@example.com", PasswordHash: "x"})
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))

	var count int64
	require.NoError(t, repos.db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWishlistRepository_CreateRequiresOwner(t *testing.T) {
	repos := newRepositories(t)

	err := repos.wishlists.Create(context.Background(), &entity.Wishlist{UserID: uuid.Must(uuid.NewV7()), Title: "Orphan"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestWishlistRepository_FindDetailsByID(t *testing.T) {
	repos := newRepositories(t)
	ctx := context.Background()

	owner := repos.createUser(t, "Alice", "alice@example.com")
	wishlist := repos.createWishlist(t, owner.ID, "Birthday")
	first := repos.createItem(t, wishlist.ID, "first")
	second := repos.createItem(t, wishlist.ID, "second")

	bare, err := repos.wishlists.FindByID(ctx, wishlist.ID)
	require.NoError(t, err)
	assert.Nil(t, bare.Owner)
	assert.Nil(t, bare.Items)
	assert.True(t, bare.IsOwnedBy(owner.ID))

	details, err := repos.wishlists.FindDetailsByID(ctx, wishlist.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Owner)
	assert.Equal(t, owner.ID, details.Owner.ID)
	assert.Equal(t, "Alice", details.Owner.Name)
	assert.Equal(t, "alice@example.com", details.Owner.Email)
	require.Len(t, details.Items, 2)
	assert.Equal(t, second.ID, details.Items[0].ID)
	assert.Equal(t, first.ID, details.Items[1].ID)
	assert.Equal(t, int64(2), details.ItemsCount)

	_, err = repos.wishlists.FindDetailsByID(ctx, uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)
}

func TestWishlistRepository_FindDetailsByID_Empty(t *testing.T) {
	repos := newRepositories(t)

	owner := repos.createUser(t, "Alice", "alice@example.com")
	wishlist := repos.createWishlist(t, owner.ID, "Empty")

	details, err := repos.wishlists.FindDetailsByID(context.Background(), wishlist.ID)
	require.NoError(t, err)
	assert.NotNil(t, details.Items)
	assert.Empty(t, details.Items)
	assert.Zero(t, details.ItemsCount)
}

func TestWishlistRepository_ListSummaries(t *testing.T) {
	repos := newRepositories(t)
	ctx := context.Background()

	alice := repos.createUser(t, "Alice", "alice@example.com")
	bob := repos.createUser(t, "Bob", "bob@example.com")

	older := repos.createWishlist(t, alice.ID, "Older")
	repos.createItem(t, older.ID, "a")
	repos.createItem(t, older.ID, "b")
	private := &entity.Wishlist{UserID: bob.ID, Title: "Private", IsPublic: false}
	require.NoError(t, repos.wishlists.Create(ctx, private))
	newest := &entity.Wishlist{UserID: alice.ID, Title: "Newest", IsPublic: true}
	require.NoError(t, repos.wishlists.Create(ctx, newest))

	all, err := repos.wishlists.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, private.ID, all[1].ID)
	assert.Equal(t, older.ID, all[2].ID)
	assert.Equal(t, int64(2), all[2].ItemsCount)
	assert.Zero(t, all[0].ItemsCount)
	require.NotNil(t, all[1].Owner)
	assert.Equal(t, "Bob", all[1].Owner.Name)
	assert.True(t, all[0].IsPublic)

	mine, err := repos.wishlists.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newest.ID, mine[0].ID)
	assert.Equal(t, int64(2), mine[1].ItemsCount)

	none, err := repos.wishlists.ListByUser(ctx, uuid.Must(uuid.NewV7()))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestWishlistItemRepository(t *testing.T) {
	repos := newRepositories(t)
	ctx := context.Background()

	owner := repos.createUser(t, "Alice", "alice@example.com")
	wishlist := repos.createWishlist(t, owner.ID, "Birthday")

	err := repos.items.Create(ctx, &entity.WishlistItem{WishlistID: uuid.Must(uuid.NewV7()), Title: "lost"})
	assert.ErrorIs(t, err, repository.ErrWishlistNotFound)

	first := repos.createItem(t, wishlist.ID, "first")
	second := repos.createItem(t, wishlist.ID, "second")
	assert.Less(t, first.ID.String(), second.ID.String())

	items, err := repos.items.ListByWishlist(ctx, wishlist.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []uuid.UUID{second.ID, first.ID}, []uuid.UUID{items[0].ID, items[1].ID})
	assert.Equal(t, "https://example.com/second", items[0].URL)
	assert.Equal(t, "", items[0].ImageURL)
}
