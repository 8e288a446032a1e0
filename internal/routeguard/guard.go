package routeguard

import (
	domain "shopfront-service/internal/domain/session"
)

// Requirement is the capability a route demands, attached per route at
// configuration time.
type Requirement int

const (
	// Public routes are always allowed.
	Public Requirement = iota
	// RequiresNoAuth routes (login, register) are only for logged-out
	// visitors.
	RequiresNoAuth
	// RequiresUser routes are for regular users only. Admins are redirected
	// to product management: an admin browsing end-user pages is not a
	// supported use case.
	RequiresUser
	// RequiresAdmin routes are for admins only.
	RequiresAdmin
)

// Well-known redirect targets.
const (
	HomePath          = "/"
	LoginPath         = "/LoginPage"
	ManageProductPath = "/ManageProduct"
)

// Decision is the outcome of one navigation attempt.
type Decision struct {
	Allow      bool
	RedirectTo string
}

var allow = Decision{Allow: true}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Decide evaluates a navigation attempt. It is stateless and recomputed from
// the current session on every request.
func Decide(s domain.Session, req Requirement) Decision {
	switch req {
	case Public:
		return allow

	case RequiresNoAuth:
		if !s.LoggedIn() {
			return allow
		}
		if s.Role() == domain.RoleAdmin {
			return redirect(ManageProductPath)
		}
		return redirect(HomePath)

	case RequiresUser:
		switch s.Role() {
		case domain.RoleUser:
			return allow
		case domain.RoleAdmin:
			return redirect(ManageProductPath)
		default:
			return redirect(LoginPath)
		}

	case RequiresAdmin:
		if s.Role() == domain.RoleAdmin {
			return allow
		}
		return redirect(LoginPath)
	}

	// Unknown requirements fail closed.
	return redirect(LoginPath)
}
