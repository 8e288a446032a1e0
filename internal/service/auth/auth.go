package auth

import (
	"context"

	domain "shopfront-service/internal/domain/session"
	xerrors "shopfront-service/internal/pkg/errors"
	sess "shopfront-service/internal/pkg/session"
	"shopfront-service/internal/upstream"

	"go.uber.org/zap"
)

// UpstreamAuth is the slice of the upstream client the auth service uses.
type UpstreamAuth interface {
	Login(ctx context.Context, email, password string) (upstream.LoginResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) error
	GetUser(ctx context.Context, token string) (domain.UserProfile, error)
}

// ProfileCache caches validated profiles keyed by upstream token.
type ProfileCache interface {
	Get(ctx context.Context, token string) (*sess.CachedProfile, error)
	Set(ctx context.Context, token string, profile domain.UserProfile) error
	Delete(ctx context.Context, token string) error
}

// AuthService owns the session lifecycle: login, resolution, logout.
type AuthService struct {
	api    UpstreamAuth
	cache  ProfileCache
	codec  *sess.Codec
	logger *zap.Logger
}

func NewAuthService(api UpstreamAuth, cache ProfileCache, codec *sess.Codec, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, cache: cache, codec: codec, logger: logger}
}

// Login exchanges credentials upstream and mints the session cookie. On any
// failure the session stays unauthenticated; there is no automatic retry.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (string, domain.UserProfile, error) {
	result, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return "", domain.UserProfile{}, err
	}
	if result.Token == "" {
		return "", domain.UserProfile{}, xerrors.Wrap(xerrors.ErrServer, "upstream login returned no token")
	}

	profile := result.Profile()
	cookie, err := s.codec.Encode(result.Token, profile)
	if err != nil {
		return "", domain.UserProfile{}, xerrors.Wrap(err, "failed to mint session")
	}

	if err := s.cache.Set(ctx, result.Token, profile); err != nil {
		// Cache is an optimization; the resolver falls back to upstream.
		s.logger.Warn("failed to cache profile after login", zap.Error(err))
	}

	return cookie, profile, nil
}

// Register forwards a registration to the upstream API.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) error {
	return s.api.Register(ctx, req)
}

// Resolve turns a session cookie into the authoritative session state.
// It never returns an error: any validation failure resolves to logged-out,
// and purge=true tells the caller to drop the stored cookie (fail-closed).
func (s *AuthService) Resolve(ctx context.Context, cookie string) (domain.Session, bool) {
	if cookie == "" {
		return domain.LoggedOut, false
	}

	claims, err := s.codec.Decode(cookie)
	if err != nil {
		s.logger.Debug("rejecting undecodable session cookie", zap.Error(err))
		return domain.LoggedOut, true
	}

	token := claims.UpstreamToken

	cached, err := s.cache.Get(ctx, token)
	if err != nil {
		s.logger.Warn("profile cache read failed, revalidating upstream", zap.Error(err))
	}
	if cached != nil {
		profile := cached.Profile
		return domain.Session{Token: token, User: &profile}, false
	}

	profile, err := s.api.GetUser(ctx, token)
	if err != nil {
		// Expired token, network failure, upstream outage: all resolve to
		// logged-out with the stored token purged.
		s.logger.Info("session resolution failed, logging out", zap.Error(err))
		if derr := s.cache.Delete(ctx, token); derr != nil {
			s.logger.Warn("failed to purge profile cache", zap.Error(derr))
		}
		return domain.LoggedOut, true
	}

	if err := s.cache.Set(ctx, token, profile); err != nil {
		s.logger.Warn("failed to cache resolved profile", zap.Error(err))
	}
	return domain.Session{Token: token, User: &profile}, false
}

// Logout clears the session locally. No upstream round-trip is required for
// logout to take effect; it always succeeds client-side.
func (s *AuthService) Logout(ctx context.Context, cookie string) {
	if cookie == "" {
		return
	}
	claims, err := s.codec.Decode(cookie)
	if err != nil {
		return
	}
	if err := s.cache.Delete(ctx, claims.UpstreamToken); err != nil {
		s.logger.Warn("failed to purge profile cache on logout", zap.Error(err))
	}
}

// CookieTTLSeconds is the max-age for the session cookie.
func (s *AuthService) CookieTTLSeconds() int {
	return int(s.codec.TTL().Seconds())
}
