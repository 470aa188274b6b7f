package obs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID attaches a fresh run id to ctx.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RunIDKey, uuid.NewString())
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Time starts a timer for op and returns a closure that logs its duration.
// Use as: defer obs.Time(ctx, logger, "op")(&err)
func Time(ctx context.Context, logger *zap.Logger, name string) func(errp *error) {
	start := time.Now()
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("run_id", RunID(ctx)),
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			logger.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		logger.Debug("operation done", fields...)
	}
}
