package graphql

import (
	"context"
	"log/slog"

	deliverycontext "wishlist/internal/delivery/context"
	domainerrors "wishlist/internal/domain/errors"

	"github.com/pkg/errors"
)

// resolverError is returned unwrapped so the executor picks up its extensions.
type resolverError struct {
	message string
	code    string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

func (r *Resolver) toResolverError(ctx context.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return &resolverError{message: appErr.Message(), code: appErr.ErrorCode()}
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).ErrorContext(ctx, "GraphQL resolver failed", slog.Any("error", err))

	return &resolverError{
		message: domainerrors.ErrInternalError.Message(),
		code:    domainerrors.ErrInternalError.ErrorCode(),
	}
}
