// README: Email+password identity operations via Firebase Auth.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

// The Admin SDK can create and revoke users but cannot mint a password
// session; sign-in goes through the Identity Toolkit REST endpoint with the
// project's web API key.
const defaultSignInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Service wraps the Firebase identity operations the app exposes:
// create-account, sign-in and sign-out. The current-identity stream is a
// client-SDK concern; the server side only verifies tokens (see middleware).
type Service struct {
	auth           *fbauth.Client
	webAPIKey      string
	signInEndpoint string
	httpClient     *http.Client
}

// NewService builds the identity service. webAPIKey may be empty; sign-in
// then reports ErrNotConfigured while register/sign-out keep working through
// the Admin SDK.
func NewService(auth *fbauth.Client, webAPIKey string) *Service {
	return &Service{
		auth:           auth,
		webAPIKey:      strings.TrimSpace(webAPIKey),
		signInEndpoint: defaultSignInEndpoint,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Register creates a new email+password identity.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentials
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := s.auth.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &User{UID: record.UID, Email: record.Email}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	ExpiresIn    string `json:"expiresIn"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SignIn exchanges email+password for an ID token session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if s.webAPIKey == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("account: marshal sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.signInEndpoint+"?key="+s.webAPIKey, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("account: build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var sr signInResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, fmt.Errorf("%w: unmarshal sign-in response: %v", ErrUnavailable, err)
	}
	if sr.Error != nil {
		return nil, mapSignInError(sr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || sr.IDToken == "" {
		return nil, fmt.Errorf("%w: sign-in returned status %d", ErrUnavailable, resp.StatusCode)
	}

	return &Session{
		UID:          sr.LocalID,
		Email:        sr.Email,
		IDToken:      sr.IDToken,
		RefreshToken: sr.RefreshToken,
		ExpiresIn:    sr.ExpiresIn,
	}, nil
}

// SignOut revokes the user's refresh tokens. Existing ID tokens stay valid
// until their natural expiry (Firebase semantics); the client discards its
// local session immediately.
func (s *Service) SignOut(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrInvalidCredentials
	}
	if err := s.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// mapSignInError folds Identity Toolkit error codes into the account
// taxonomy. Credential-shaped failures collapse into one error so the API
// never leaks whether an email exists.
func mapSignInError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(code, "USER_DISABLED"):
		return ErrInvalidCredentials
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return fmt.Errorf("%w: too many attempts", ErrUnavailable)
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, code)
	}
}
