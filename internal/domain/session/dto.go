package session

// LoginRequest for user login against the upstream API.
type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	IPAddress string `json:"-"`
}

// RegisterRequest for user registration. Role is set server-side for the
// admin-register flow and never bound from the request body.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"-"`
}

// LoginResponse is returned to the browser after a successful login.
type LoginResponse struct {
	User UserProfile `json:"user"`
}

// StateResponse describes the resolved session for the navbar and guards.
type StateResponse struct {
	LoggedIn bool         `json:"logged_in"`
	Role     string       `json:"role"`
	User     *UserProfile `json:"user,omitempty"`
}

// State converts a resolved session into its wire form.
func State(s Session) StateResponse {
	return StateResponse{
		LoggedIn: s.LoggedIn(),
		Role:     s.Role().String(),
		User:     s.User,
	}
}
