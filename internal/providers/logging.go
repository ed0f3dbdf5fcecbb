package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
)

// LogWithProvider emits a log entry if a logger is available and always includes the provider name.
// The request-scoped logger on ctx wins over fallback.
func LogWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
