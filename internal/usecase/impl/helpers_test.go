package impl

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
