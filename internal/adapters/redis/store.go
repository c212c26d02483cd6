// Package redis provides a Redis-backed ports.Store so operator settings are
// shared by every console replica.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/trifall/link-shortener-ui/internal/ports"
)

// DefaultKeyPrefix namespaces every key written by Store.
const DefaultKeyPrefix = "linkadmin:"

var _ ports.Store = (*Store)(nil)

// Store implements ports.Store on top of a Redis client. Values never expire.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// NewStore creates a new Redis-backed store using DefaultKeyPrefix.
func NewStore(client redis.UniversalClient) *Store {
	return NewStoreWithPrefix(client, DefaultKeyPrefix)
}

// NewStoreWithPrefix creates a Redis store with a custom key prefix.
func NewStoreWithPrefix(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
