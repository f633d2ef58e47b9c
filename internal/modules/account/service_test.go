// README: Tests for sign-in against a stub Identity Toolkit endpoint.
package account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService(endpoint string) *Service {
	return &Service{
		webAPIKey:      "web-key",
		signInEndpoint: endpoint,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "web-key" {
			t.Errorf("missing api key query param")
		}
		w.Write([]byte(`{"idToken":"tok","refreshToken":"ref","localId":"uid-1","email":"a@b.com","expiresIn":"3600"}`))
	}))
	defer srv.Close()

	sess, err := testService(srv.URL).SignIn(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.UID != "uid-1" || sess.IDToken != "tok" || sess.RefreshToken != "ref" {
		t.Errorf("unexpected session: %#v", sess)
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
	}))
	defer srv.Close()

	_, err := testService(srv.URL).SignIn(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_NoWebKey(t *testing.T) {
	svc := NewService(nil, "  ")
	if _, err := svc.SignIn(context.Background(), "a@b.com", "secret1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSignIn_EmptyInputsRejectedLocally(t *testing.T) {
	svc := testService("http://unreachable.invalid")
	if _, err := svc.SignIn(context.Background(), "", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.SignIn(context.Background(), "a@b.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestRegister_LocalValidation(t *testing.T) {
	// Validation runs before the Admin SDK is touched, so a nil client is safe.
	svc := NewService(nil, "")

	if _, err := svc.Register(context.Background(), "not-an-email", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestMapSignInError(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"EMAIL_NOT_FOUND", ErrInvalidCredentials},
		{"INVALID_PASSWORD", ErrInvalidCredentials},
		{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredentials},
		{"USER_DISABLED", ErrInvalidCredentials},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : access disabled", ErrUnavailable},
		{"SOMETHING_ELSE", ErrUnavailable},
	}
	for _, tc := range cases {
		if got := mapSignInError(tc.code); !errors.Is(got, tc.want) {
			t.Errorf("mapSignInError(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
