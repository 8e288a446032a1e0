package session

import (
	"fmt"
	"time"

	domain "shopfront-service/internal/domain/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Claims is the content of the session cookie: the upstream bearer token plus
// the profile captured at login. The cookie is signed so the browser cannot
// alter the wrapped token or the embedded role. It is not a grant by itself;
// the resolver still revalidates the upstream token on every resolution.
type Claims struct {
	UpstreamToken string             `json:"upstream_token"`
	Profile       domain.UserProfile `json:"profile"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session cookies with HS256.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewCodec(secret, issuer string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// TTL returns the cookie lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode mints a signed session cookie wrapping the upstream token.
func (c *Codec) Encode(upstreamToken string, profile domain.UserProfile) (string, error) {
	if upstreamToken == "" {
		return "", fmt.Errorf("cannot encode session without upstream token")
	}

	now := time.Now()
	claims := &Claims{
		UpstreamToken: upstreamToken,
		Profile:       profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   profile.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode verifies a session cookie and returns its claims. Any failure
// (bad signature, expiry, wrong algorithm) means logged out.
func (c *Codec) Decode(cookie string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(cookie, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer))
	if err != nil {
		return nil, fmt.Errorf("invalid session cookie: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid session cookie")
	}
	return claims, nil
}
