package routeguard

import (
	"testing"

	domain "shopfront-service/internal/domain/session"
)

func guest() domain.Session {
	return domain.LoggedOut
}

func loggedIn(role string) domain.Session {
	return domain.Session{
		Token: "tok",
		User:  &domain.UserProfile{ID: "u1", Name: "Test", Role: role},
	}
}

func TestDecideMatrix(t *testing.T) {
	tests := []struct {
		name     string
		session  domain.Session
		req      Requirement
		allow    bool
		redirect string
	}{
		{"public guest", guest(), Public, true, ""},
		{"public user", loggedIn("user"), Public, true, ""},
		{"public admin", loggedIn("admin"), Public, true, ""},

		{"no-auth guest", guest(), RequiresNoAuth, true, ""},
		{"no-auth user", loggedIn("user"), RequiresNoAuth, false, HomePath},
		{"no-auth admin", loggedIn("admin"), RequiresNoAuth, false, ManageProductPath},

		{"user-only guest", guest(), RequiresUser, false, LoginPath},
		{"user-only user", loggedIn("user"), RequiresUser, true, ""},
		{"user-only admin", loggedIn("admin"), RequiresUser, false, ManageProductPath},

		{"admin-only guest", guest(), RequiresAdmin, false, LoginPath},
		{"admin-only user", loggedIn("user"), RequiresAdmin, false, LoginPath},
		{"admin-only admin", loggedIn("admin"), RequiresAdmin, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.session, tt.req)
			if got.Allow != tt.allow {
				t.Errorf("Allow = %v, want %v", got.Allow, tt.allow)
			}
			if got.RedirectTo != tt.redirect {
				t.Errorf("RedirectTo = %q, want %q", got.RedirectTo, tt.redirect)
			}
		})
	}
}

func TestAdminRequirementIgnoresOtherSessionFields(t *testing.T) {
	// A logged-out session must redirect to login regardless of any stale
	// profile data attached to it.
	s := domain.Session{User: &domain.UserProfile{ID: "u1", Role: "admin"}}
	got := Decide(s, RequiresAdmin)
	if got.Allow {
		t.Fatal("logged-out session must never pass an admin requirement")
	}
	if got.RedirectTo != LoginPath {
		t.Errorf("expected redirect to %q, got %q", LoginPath, got.RedirectTo)
	}
}

func TestUnknownRoleIsGuest(t *testing.T) {
	got := Decide(loggedIn("superuser"), RequiresUser)
	if got.Allow {
		t.Fatal("unknown role must not pass a user requirement")
	}
	if got.RedirectTo != LoginPath {
		t.Errorf("expected redirect to %q, got %q", LoginPath, got.RedirectTo)
	}
}
