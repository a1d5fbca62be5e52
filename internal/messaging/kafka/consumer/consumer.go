package consumer

import (
	"context"
	"slices"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventClearCart = "CLEAR_CART"

// fetchRetryDelay is the pause after a failed fetch before the next attempt.
var fetchRetryDelay = time.Second

// Reader is the part of *kafka.Reader the consumer needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// CartClearer empties the cart of a session.
type CartClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// ConsumeMessages blocks until ctx is done. Messages are committed once
// handled; a message whose handling failed is left uncommitted so it is
// redelivered after a rebalance or restart. Unknown event types and
// undecodable payloads are committed and skipped.
func ConsumeMessages(ctx context.Context, reader Reader, carts CartClearer, logger ...*zap.Logger) {
	l := zap.L().Named("consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("consumer")
	}

	l.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.Info("stopped consuming messages")
				return
			}
			l.Error("fetch message failed", zap.Error(err))
			select {
			case <-ctx.Done():
				l.Info("stopped consuming messages")
				return
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")
		fields := []zap.Field{
			zap.String("event_type", eventType),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		switch eventType {
		case EventClearCart:
			if err := handleClearCart(ctx, msg.Value, carts, l); err != nil {
				if isPoison(err) {
					l.Warn("skipping malformed message", append(fields, zap.Error(err))...)
					commit(ctx, reader, msg, l)
					continue
				}
				l.Error("handle message failed", append(fields, zap.Error(err))...)
				continue
			}
			commit(ctx, reader, msg, l)
		default:
			l.Debug("skipping unknown event", fields...)
			commit(ctx, reader, msg, l)
		}
	}
}

func commit(ctx context.Context, reader Reader, msg kafka.Message, l *zap.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		l.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}

// getHeader returns the first value for key, or "" when absent.
func getHeader(headers []kafka.Header, key string) string {
	i := slices.IndexFunc(headers, func(h kafka.Header) bool { return h.Key == key })
	if i < 0 {
		return ""
	}
	return string(headers[i].Value)
}
