package graphql

import (
	"context"
	"time"

	"wishlist/internal/domain/entity"
	"wishlist/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type userResolver struct {
	user *entity.UserSummary
}

func (u *userResolver) ID() graphqlgo.ID  { return graphqlgo.ID(u.user.ID.String()) }
func (u *userResolver) Name() string      { return u.user.Name }
func (u *userResolver) Email() string     { return u.user.Email }
func (u *userResolver) CreatedAt() string { return formatTime(u.user.CreatedAt) }

type authPayloadResolver struct {
	out *usecase.AuthOutput
}

func (p *authPayloadResolver) Token() string { return p.out.Token }

func (p *authPayloadResolver) User() *userResolver {
	return &userResolver{user: p.out.User.Summary()}
}

// wishlistResolver loads owner and items on demand when the read path did not join them.
// Field resolvers may run concurrently, so the wrapped entity is never mutated.
type wishlistResolver struct {
	root       *Resolver
	wishlist   *entity.Wishlist
	itemsCount int32
}

func (r *Resolver) newWishlistResolver(wishlist *entity.Wishlist) *wishlistResolver {
	count := int32(wishlist.ItemsCount)
	if wishlist.Items != nil {
		count = int32(len(wishlist.Items))
	}

	return &wishlistResolver{root: r, wishlist: wishlist, itemsCount: count}
}

func (r *Resolver) wishlistResolvers(wishlists []*entity.Wishlist) []*wishlistResolver {
	out := make([]*wishlistResolver, 0, len(wishlists))
	for _, wishlist := range wishlists {
		out = append(out, r.newWishlistResolver(wishlist))
	}

	return out
}

func (w *wishlistResolver) ID() graphqlgo.ID     { return graphqlgo.ID(w.wishlist.ID.String()) }
func (w *wishlistResolver) UserID() graphqlgo.ID { return graphqlgo.ID(w.wishlist.UserID.String()) }
func (w *wishlistResolver) Title() string        { return w.wishlist.Title }
func (w *wishlistResolver) IsPublic() bool       { return w.wishlist.IsPublic }
func (w *wishlistResolver) CreatedAt() string    { return formatTime(w.wishlist.CreatedAt) }

func (w *wishlistResolver) User(ctx context.Context) (*userResolver, error) {
	if w.wishlist.Owner != nil {
		return &userResolver{user: w.wishlist.Owner}, nil
	}

	details, err := w.root.wishlistUC.GetWishlist(ctx, w.wishlist.ID)
	if err != nil {
		return nil, w.root.toResolverError(ctx, err)
	}

	return &userResolver{user: details.Owner}, nil
}

func (w *wishlistResolver) Items(ctx context.Context) ([]*itemResolver, error) {
	if w.wishlist.Items != nil {
		return itemResolvers(w.wishlist.Items), nil
	}

	items, err := w.root.wishlistUC.ListWishlistItems(ctx, w.wishlist.ID)
	if err != nil {
		return nil, w.root.toResolverError(ctx, err)
	}

	return itemResolvers(items), nil
}

func (w *wishlistResolver) ItemsCount() int32 { return w.itemsCount }

type itemResolver struct {
	item *entity.WishlistItem
}

func itemResolvers(items []*entity.WishlistItem) []*itemResolver {
	out := make([]*itemResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &itemResolver{item: item})
	}

	return out
}

func (i *itemResolver) ID() graphqlgo.ID         { return graphqlgo.ID(i.item.ID.String()) }
func (i *itemResolver) WishlistID() graphqlgo.ID { return graphqlgo.ID(i.item.WishlistID.String()) }
func (i *itemResolver) Title() string            { return i.item.Title }
func (i *itemResolver) Description() string      { return i.item.Description }
func (i *itemResolver) URL() string              { return i.item.URL }
func (i *itemResolver) ImageURL() string         { return i.item.ImageURL }
func (i *itemResolver) CreatedAt() string        { return formatTime(i.item.CreatedAt) }
