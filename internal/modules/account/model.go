// README: Account model and error definitions.
package account

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrNotConfigured      = errors.New("identity sign-in is not configured")
	ErrUnavailable        = errors.New("identity service unavailable")
)

// User is a registered identity.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Session is the result of a successful password sign-in. The ID token is
// what the client presents as a Bearer credential on protected routes.
type Session struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}
