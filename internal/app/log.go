package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// logFailure records a failed operation. Caller errors (forbidden, not
// found, conflict, bad request) are warnings; anything else is an error.
func logFailure(ctx context.Context, logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if domain.KindOf(err) == domain.KindInternal {
		level = slog.LevelError
	}

	args := make([]slog.Attr, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation))
	args = append(args, attrs...)
	args = append(args, slog.Any("error", err))

	logger.LogAttrs(ctx, level, "operation failed", args...)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
