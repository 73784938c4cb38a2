package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// LoggerExtractor adds the request id to log records as "request_id".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
