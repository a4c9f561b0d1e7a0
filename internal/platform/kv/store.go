// Package kv provides the flat key-value store Luna persists into.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store wraps a redis client behind the narrow get/set/remove contract the
// application depends on. Values are stored as JSON documents.
type Store struct {
	client *redis.Client
}

// NewStore wraps an existing redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get unmarshals the value at key into dest. The second return is false when
// the key does not exist; dest is left untouched in that case.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("platform/kv: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("platform/kv: decode %s: %w", key, err)
	}
	return true, nil
}

// Set marshals value as JSON and writes it at key with no expiry.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("platform/kv: encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("platform/kv: set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the given keys. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("platform/kv: remove: %w", err)
	}
	return nil
}
