package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "shopfront-service/internal/domain/session"
	xerrors "shopfront-service/internal/pkg/errors"
	sess "shopfront-service/internal/pkg/session"
	"shopfront-service/internal/upstream"

	"go.uber.org/zap"
)

type fakeUpstream struct {
	loginResult upstream.LoginResult
	loginErr    error
	getUserFn   func(token string) (domain.UserProfile, error)
	getUserHits int
}

func (f *fakeUpstream) Login(ctx context.Context, email, password string) (upstream.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeUpstream) Register(ctx context.Context, req domain.RegisterRequest) error {
	return nil
}

func (f *fakeUpstream) GetUser(ctx context.Context, token string) (domain.UserProfile, error) {
	f.getUserHits++
	return f.getUserFn(token)
}

type memCache struct {
	entries map[string]sess.CachedProfile
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]sess.CachedProfile)}
}

func (m *memCache) Get(ctx context.Context, token string) (*sess.CachedProfile, error) {
	cached, ok := m.entries[token]
	if !ok {
		return nil, nil
	}
	return &cached, nil
}

func (m *memCache) Set(ctx context.Context, token string, profile domain.UserProfile) error {
	m.entries[token] = sess.CachedProfile{Profile: profile, ValidatedAt: time.Now()}
	return nil
}

func (m *memCache) Delete(ctx context.Context, token string) error {
	delete(m.entries, token)
	return nil
}

func newService(api *fakeUpstream, cache ProfileCache) *AuthService {
	codec := sess.NewCodec("test-secret", "shopfront", time.Hour)
	return NewAuthService(api, cache, codec, zap.NewNop())
}

func TestLoginMintsDecodableCookie(t *testing.T) {
	api := &fakeUpstream{
		loginResult: upstream.LoginResult{
			Token: "up-tok", ID: "u1", Name: "Alice", Email: "a@example.com", Role: "user",
		},
	}
	cache := newMemCache()
	svc := newService(api, cache)

	cookie, profile, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if profile.ID != "u1" {
		t.Errorf("unexpected profile: %+v", profile)
	}

	// The cookie alone resolves without an upstream call: login cached the
	// profile.
	resolved, purge := svc.Resolve(context.Background(), cookie)
	if purge {
		t.Fatal("fresh login must not resolve to a purge")
	}
	if !resolved.LoggedIn() || resolved.UserID() != "u1" {
		t.Fatalf("expected logged-in session for u1, got %+v", resolved)
	}
	if api.getUserHits != 0 {
		t.Errorf("expected cache hit, got %d upstream validations", api.getUserHits)
	}
}

func TestLoginFailureLeavesSessionUnauthenticated(t *testing.T) {
	api := &fakeUpstream{loginErr: xerrors.ErrAuth}
	svc := newService(api, newMemCache())

	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@example.com", Password: "bad"})
	if !errors.Is(err, xerrors.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestResolveEmptyCookieIsLoggedOut(t *testing.T) {
	svc := newService(&fakeUpstream{}, newMemCache())

	session, purge := svc.Resolve(context.Background(), "")
	if session.LoggedIn() || purge {
		t.Fatalf("empty cookie: expected clean logged-out state, got %+v purge=%v", session, purge)
	}
}

func TestResolveGarbageCookiePurges(t *testing.T) {
	svc := newService(&fakeUpstream{}, newMemCache())

	session, purge := svc.Resolve(context.Background(), "not-a-jwt")
	if session.LoggedIn() {
		t.Fatal("garbage cookie must resolve logged-out")
	}
	if !purge {
		t.Fatal("garbage cookie must be purged")
	}
}

func TestResolveExpiredTokenPurgesFailClosed(t *testing.T) {
	api := &fakeUpstream{
		getUserFn: func(token string) (domain.UserProfile, error) {
			return domain.UserProfile{}, xerrors.ErrAuth
		},
	}
	cache := newMemCache()
	svc := newService(api, cache)

	codec := sess.NewCodec("test-secret", "shopfront", time.Hour)
	cookie, err := codec.Encode("expired-tok", domain.UserProfile{ID: "u1", Role: "user"})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	session, purge := svc.Resolve(context.Background(), cookie)
	if session.LoggedIn() {
		t.Fatal("expired upstream token must resolve logged-out")
	}
	if !purge {
		t.Fatal("expired upstream token must purge the stored cookie")
	}
	if _, ok := cache.entries["expired-tok"]; ok {
		t.Error("cache entry must be removed on failed resolution")
	}
}

func TestResolveNetworkFailureFailsClosed(t *testing.T) {
	api := &fakeUpstream{
		getUserFn: func(token string) (domain.UserProfile, error) {
			return domain.UserProfile{}, xerrors.ErrNetwork
		},
	}
	svc := newService(api, newMemCache())

	codec := sess.NewCodec("test-secret", "shopfront", time.Hour)
	cookie, _ := codec.Encode("tok", domain.UserProfile{ID: "u1"})

	session, purge := svc.Resolve(context.Background(), cookie)
	if session.LoggedIn() || !purge {
		t.Fatalf("network failure must fail closed, got %+v purge=%v", session, purge)
	}
}

func TestResolveCacheMissValidatesUpstream(t *testing.T) {
	api := &fakeUpstream{
		getUserFn: func(token string) (domain.UserProfile, error) {
			return domain.UserProfile{ID: "u2", Name: "Bob", Role: "admin"}, nil
		},
	}
	cache := newMemCache()
	svc := newService(api, cache)

	codec := sess.NewCodec("test-secret", "shopfront", time.Hour)
	cookie, _ := codec.Encode("fresh-tok", domain.UserProfile{ID: "u2", Role: "admin"})

	session, purge := svc.Resolve(context.Background(), cookie)
	if purge || !session.LoggedIn() {
		t.Fatalf("expected logged-in resolution, got %+v purge=%v", session, purge)
	}
	if session.Role() != domain.RoleAdmin {
		t.Errorf("expected admin role, got %v", session.Role())
	}
	if api.getUserHits != 1 {
		t.Errorf("expected exactly one upstream validation, got %d", api.getUserHits)
	}
	if _, ok := cache.entries["fresh-tok"]; !ok {
		t.Error("resolved profile must be cached")
	}
}

func TestLogoutPurgesCache(t *testing.T) {
	cache := newMemCache()
	svc := newService(&fakeUpstream{}, cache)

	codec := sess.NewCodec("test-secret", "shopfront", time.Hour)
	cookie, _ := codec.Encode("tok", domain.UserProfile{ID: "u1"})
	cache.Set(context.Background(), "tok", domain.UserProfile{ID: "u1"})

	svc.Logout(context.Background(), cookie)
	if _, ok := cache.entries["tok"]; ok {
		t.Error("logout must remove the cached profile")
	}
}
