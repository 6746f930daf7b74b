// Package graphql serves the GraphQL surface over the same use cases as the REST handlers.
package graphql

import (
	_ "embed"
	"log/slog"

	"wishlist/config"
	"wishlist/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxDepth = 8

//go:embed schema.graphql
var schemaSDL string

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	WishlistUC usecase.WishlistUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// Handler executes GraphQL requests posted as {query, operationName, variables}.
type Handler struct {
	schema *graphqlgo.Schema
	relay  *relay.Handler
}

// NewHandler parses the schema against the resolvers.
func NewHandler(params HandlerParams) (*Handler, error) {
	maxDepth := defaultMaxDepth
	if params.Config != nil && params.Config.GraphQL != nil && params.Config.GraphQL.MaxDepth > 0 {
		maxDepth = params.Config.GraphQL.MaxDepth
	}

	resolver := &Resolver{
		authUC:     params.AuthUC,
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}

	schema, err := graphqlgo.ParseSchema(schemaSDL, resolver, graphqlgo.MaxDepth(maxDepth))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse graphql schema")
	}

	return &Handler{
		schema: schema,
		relay:  &relay.Handler{Schema: schema},
	}, nil
}

// Serve adapts the relay handler to echo. The request context already carries the caller id.
func (h *Handler) Serve(c echo.Context) error {
	h.relay.ServeHTTP(c.Response(), c.Request())

	return nil
}
