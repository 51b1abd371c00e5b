package service

import (
	"context"
	"time"
)

// SessionStore backs logout: revoked tokens are denylisted until their natural
// expiry and rejected by the auth middleware.
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
