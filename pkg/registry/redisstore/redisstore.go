// Package redisstore implements registry.Store on Redis so several processes
// rendering fragments of the same page agree on which configuration was
// emitted first. Keys are namespaced by a scope, normally the page id.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-dynamicform/pkg/registry"
)

const (
	defaultPrefix = "dynamicform"
	defaultTTL    = 30 * time.Minute
	maxAttempts   = 3
)

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			s.prefix = trimmed
		}
	}
}

// WithTTL sets how long registrations survive. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

// Store keeps container registrations in Redis.
type Store struct {
	client redis.UniversalClient
	scope  string
	prefix string
	ttl    time.Duration
}

var _ registry.Store = (*Store)(nil)

// New returns a Store writing under prefix:scope:container.
func New(client redis.UniversalClient, scope string, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, errors.New("redisstore: client is required")
	}
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return nil, errors.New("redisstore: scope is required")
	}
	s := &Store{
		client: client,
		scope:  scope,
		prefix: defaultPrefix,
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Key returns the Redis key used for container.
func (s *Store) Key(container string) string {
	return s.prefix + ":" + s.scope + ":" + container
}

func (s *Store) Add(ctx context.Context, container, hashVar string) (string, bool, error) {
	key := s.Key(container)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		added, err := s.client.SetNX(ctx, key, hashVar, s.ttl).Result()
		if err != nil {
			return "", false, fmt.Errorf("redisstore: setnx %s: %w", key, err)
		}
		if added {
			return hashVar, true, nil
		}

		stored, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("redisstore: get %s: %w", key, err)
		}
		return stored, false, nil
	}
	return "", false, fmt.Errorf("redisstore: %s kept expiring during registration", key)
}

// Clear removes every registration in the store's scope.
func (s *Store) Clear(ctx context.Context) error {
	pattern := s.prefix + ":" + s.scope + ":*"
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redisstore: scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redisstore: delete scope %s: %w", s.scope, err)
	}
	return nil
}
