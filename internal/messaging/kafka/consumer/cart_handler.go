package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type ClearCartPayload struct {
	SessionID string `json:"session_id"`
}

var errMissingSessionID = errors.New("missing session_id")

type poisonError struct{ err error }

func (e poisonError) Error() string { return e.err.Error() }
func (e poisonError) Unwrap() error { return e.err }

// isPoison reports whether retrying the message could never succeed.
func isPoison(err error) bool {
	var p poisonError
	return errors.As(err, &p)
}

func handleClearCart(ctx context.Context, payload []byte, carts CartClearer, l *zap.Logger) error {
	var data ClearCartPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return poisonError{fmt.Errorf("decode payload: %w", err)}
	}
	if data.SessionID == "" {
		return poisonError{errMissingSessionID}
	}

	if err := carts.Clear(ctx, data.SessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	l.Info("cart cleared", zap.String("session_id", data.SessionID))
	return nil
}
