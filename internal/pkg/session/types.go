package session

import (
	"time"

	domain "shopfront-service/internal/domain/session"
)

// CachedProfile is the Redis-held record for a validated upstream token.
type CachedProfile struct {
	Profile     domain.UserProfile `json:"profile"`
	ValidatedAt time.Time          `json:"validated_at"`
}
