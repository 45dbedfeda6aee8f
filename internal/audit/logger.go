package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/signon/internal/pubsub"
)

// Logger writes every audit event to a slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger. A nil logger means slog.Default().
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

// Start subscribes to all audit topics. Delivery stops when ctx is canceled or the
// subscriber is closed.
func (l *Logger) Start(ctx context.Context, sub pubsub.Subscriber) error {
	for _, event := range Events {
		err := sub.Subscribe(ctx, event.Topic(), func(ctx context.Context, msg pubsub.Message) error {
			entry, err := event.Decode(msg)
			if err != nil {
				return err
			}
			l.log(ctx, msg, entry)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", event.Topic(), err)
		}
	}
	return nil
}

func (l *Logger) log(ctx context.Context, msg pubsub.Message, entry Entry) {
	level := slog.LevelInfo
	if msg.Topic == Failed.Topic() {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, "auth audit",
		"topic", msg.Topic,
		"flow", entry.Flow,
		"result", entry.Result,
		"identifier", msg.Subject,
		"message", entry.Message,
		"request_id", entry.RequestID,
	)
}
