package session

// Role is the ordered capability level of a session. The ordering is
// deliberate: Admin is a superset of User for routing purposes, so capability
// checks are ordered comparisons rather than role-name equality.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

// ParseRole maps the upstream role string to a Role. Unknown or empty roles
// are guests.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleGuest
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "guest"
	}
}

// AtLeast reports whether the role grants at least the capability of other.
func (r Role) AtLeast(other Role) bool {
	return r >= other
}

// UserProfile is the cached upstream user record.
type UserProfile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the resolved authentication state for one request.
// Invariant: User is non-nil iff Token is non-empty and the token's last
// validation succeeded.
type Session struct {
	Token string       `json:"-"`
	User  *UserProfile `json:"user,omitempty"`
}

// LoggedOut is the zero session.
var LoggedOut = Session{}

func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

func (s Session) Role() Role {
	if !s.LoggedIn() {
		return RoleGuest
	}
	return ParseRole(s.User.Role)
}

func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
