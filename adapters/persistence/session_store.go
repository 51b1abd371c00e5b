package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) service.SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:revoked:" + hex.EncodeToString(sum[:])
}

func (s *redisSessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired tokens need no denylist entry.
		return nil
	}
	if err := s.rdb.Set(ctx, revocationKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("cannot revoke token: %w", err)
	}
	return nil
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.rdb.Get(ctx, revocationKey(token)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cannot check token revocation: %w", err)
	}
	return true, nil
}
