// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wishlist/config"
	"wishlist/internal/delivery/api/graphql"
	"wishlist/internal/delivery/api/middleware"
	"wishlist/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	WishlistHandler *handler.WishlistHandler
	TestHandler     *handler.TestHandler
	GraphQLHandler  *graphql.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	wishlistHandler *handler.WishlistHandler
	testHandler     *handler.TestHandler
	graphqlHandler  *graphql.Handler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		wishlistHandler: params.WishlistHandler,
		testHandler:     params.TestHandler,
		graphqlHandler:  params.GraphQLHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Identify is expected to run globally before these routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/graphql", r.graphqlHandler.Serve)
	e.GET("/graphql", r.graphqlHandler.Serve)

	api := e.Group("/api")
	api.GET("/test", r.testHandler.APIInfo)

	// Auth routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)
	api.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Wishlist routes
	wishlists := api.Group("/wishlists")
	{
		wishlists.GET("", r.wishlistHandler.ListWishlists)
		wishlists.POST("", r.wishlistHandler.CreateWishlist, r.authMiddleware.Authenticate)
		wishlists.GET("/:id", r.wishlistHandler.GetWishlist)
		wishlists.GET("/:id/items", r.wishlistHandler.ListWishlistItems)
		wishlists.POST("/:id/items", r.wishlistHandler.CreateWishlistItem, r.authMiddleware.Authenticate)
		wishlists.GET("/:id/qr", r.wishlistHandler.WishlistShareQR)
	}

	api.GET("/users/:userId/wishlists", r.wishlistHandler.ListUserWishlists)

	if dir := r.config.HTTP.StaticDir; dir != "" {
		e.Static("/", dir)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
