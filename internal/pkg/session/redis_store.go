package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	domain "shopfront-service/internal/domain/session"

	"github.com/redis/go-redis/v9"
)

// RedisStore caches validated profiles keyed by a hash of the upstream token.
// The raw token never appears in Redis keys. A cache hit lets the resolver
// skip the upstream "who am I" round-trip for the cache TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the cached profile for the token, or (nil, nil) on a miss.
func (s *RedisStore) Get(ctx context.Context, token string) (*CachedProfile, error) {
	data, err := s.client.Get(ctx, profileKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile cache: %w", err)
	}

	var cached CachedProfile
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}
	return &cached, nil
}

// Set stores a freshly validated profile.
func (s *RedisStore) Set(ctx context.Context, token string, profile domain.UserProfile) error {
	data, err := json.Marshal(CachedProfile{Profile: profile, ValidatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, profileKey(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store profile cache: %w", err)
	}
	return nil
}

// Delete purges the cache entry for a token. Used on logout and on
// fail-closed resolution.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, profileKey(token)).Err()
}

func profileKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:profile:" + hex.EncodeToString(sum[:])
}
