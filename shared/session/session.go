// Package session tracks the single live token id per admin so that a new login
// invalidates every token issued before it.
package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Store interface {
	Activate(ctx context.Context, adminID, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, adminID, tokenID string) (bool, error)
	Revoke(ctx context.Context, adminID string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func key(adminID string) string {
	return keyPrefix + adminID
}

// Activate replaces whatever token id was active for the admin.
func (s *redisStore) Activate(ctx context.Context, adminID, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(adminID), tokenID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to activate session: %w", err)
	}

	return nil
}

func (s *redisStore) IsActive(ctx context.Context, adminID, tokenID string) (bool, error) {
	current, err := s.client.Get(ctx, key(adminID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}

	return current == tokenID, nil
}

func (s *redisStore) Revoke(ctx context.Context, adminID string) error {
	if err := s.client.Del(ctx, key(adminID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}
