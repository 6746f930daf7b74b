package graphql

import (
	"context"
	"log/slog"

	deliverycontext "wishlist/internal/delivery/context"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	authUC     usecase.AuthUsecase
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

func parseID(id graphqlgo.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidIdentifier)
	}

	return parsed, nil
}

// Me is null when the request carries no usable identity.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	callerID := deliverycontext.CallerIDFromContext(ctx)
	if callerID == nil {
		return nil, nil
	}

	user, err := r.authUC.Me(ctx, *callerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, nil
		}

		return nil, r.toResolverError(ctx, err)
	}

	return &userResolver{user: user.Summary()}, nil
}

func (r *Resolver) Wishlists(ctx context.Context) ([]*wishlistResolver, error) {
	wishlists, err := r.wishlistUC.ListWishlists(ctx)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return r.wishlistResolvers(wishlists), nil
}

// Wishlist is null when no wishlist has the given id.
func (r *Resolver) Wishlist(ctx context.Context, args struct{ ID graphqlgo.ID }) (*wishlistResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	wishlist, err := r.wishlistUC.GetWishlist(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrWishlistNotFound) {
			return nil, nil
		}

		return nil, r.toResolverError(ctx, err)
	}

	return r.newWishlistResolver(wishlist), nil
}

func (r *Resolver) WishlistItems(ctx context.Context, args struct{ WishlistID graphqlgo.ID }) ([]*itemResolver, error) {
	id, err := parseID(args.WishlistID)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	items, err := r.wishlistUC.ListWishlistItems(ctx, id)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return itemResolvers(items), nil
}

func (r *Resolver) WishlistsByUser(ctx context.Context, args struct{ UserID graphqlgo.ID }) ([]*wishlistResolver, error) {
	id, err := parseID(args.UserID)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	out, err := r.wishlistUC.ListUserWishlists(ctx, id)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	owner := out.User.Summary()
	for _, wishlist := range out.Wishlists {
		wishlist.Owner = owner
	}

	return r.wishlistResolvers(out.Wishlists), nil
}

type registerArgs struct {
	Name     string
	Email    string
	Password string
}

func (r *Resolver) Register(ctx context.Context, args registerArgs) (*authPayloadResolver, error) {
	out, err := r.authUC.Register(ctx, usecase.RegisterInput{
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return &authPayloadResolver{out: out}, nil
}

type loginArgs struct {
	Email    string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authPayloadResolver, error) {
	out, err := r.authUC.Login(ctx, usecase.LoginInput{
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return &authPayloadResolver{out: out}, nil
}

type createWishlistArgs struct {
	UserID   graphqlgo.ID
	Title    string
	IsPublic bool
}

// CreateWishlist takes the owner from the arguments, not from the caller.
func (r *Resolver) CreateWishlist(ctx context.Context, args createWishlistArgs) (*wishlistResolver, error) {
	ownerID, err := parseID(args.UserID)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	wishlist, err := r.wishlistUC.CreateWishlist(ctx, usecase.CreateWishlistInput{
		OwnerID:  ownerID,
		Title:    args.Title,
		IsPublic: args.IsPublic,
	})
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return r.newWishlistResolver(wishlist), nil
}

type createWishlistItemArgs struct {
	WishlistID  graphqlgo.ID
	Title       string
	Description string
	URL         string
	ImageURL    string
}

// CreateWishlistItem checks ownership only when the request is authenticated.
func (r *Resolver) CreateWishlistItem(ctx context.Context, args createWishlistItemArgs) (*itemResolver, error) {
	wishlistID, err := parseID(args.WishlistID)
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	item, err := r.wishlistUC.CreateWishlistItem(ctx, usecase.CreateWishlistItemInput{
		WishlistID:  wishlistID,
		CallerID:    deliverycontext.CallerIDFromContext(ctx),
		Title:       args.Title,
		Description: args.Description,
		URL:         args.URL,
		ImageURL:    args.ImageURL,
	})
	if err != nil {
		return nil, r.toResolverError(ctx, err)
	}

	return &itemResolver{item: item}, nil
}
