package upstream

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/gamescout-service/internal/logging"
)

// Log emits an entry through the request-scoped logger when present, falling back
// to logger, and always tags the upstream name.
func Log(ctx context.Context, logger *slog.Logger, level slog.Level, upstream string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldUpstream, upstream))
	logger.Log(ctx, level, msg, args...)
}
