package repo

import (
	"context"
	"time"
)

// ConfirmTokenRepo backs the two-step delete protocol: RequestDelete issues a
// token bound to a record id, ConfirmDelete consumes it. Tokens expire so a
// stale confirmation can never fire. Session state lives here, at the
// boundary, never inside the matcher or the record store.
type ConfirmTokenRepo interface {
	// Issue creates a one-time token mapping to id, valid for ttl.
	Issue(ctx context.Context, id int64, ttl time.Duration) (string, error)
	// Consume resolves and invalidates token atomically. An unknown or
	// expired token returns code.ConfirmExpiredErr.
	Consume(ctx context.Context, token string) (int64, error)
}
