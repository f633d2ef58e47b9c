// README: Provider error taxonomy and normalization.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotConfigured means no API key was injected; callers surface this as
	// a credentials problem, not a crash at startup.
	ErrNotConfigured = errors.New("gemini: provider not configured")

	// ErrAuth covers rejected credentials: missing, invalid or expired key,
	// API or billing not enabled. Never retried automatically.
	ErrAuth = errors.New("gemini: authentication rejected")

	// ErrTransient covers network trouble and provider-side outages. Safe to
	// retry by resubmitting the same request.
	ErrTransient = errors.New("gemini: transient provider failure")

	// ErrEmptyReply means the provider answered without any usable text.
	ErrEmptyReply = errors.New("gemini: empty reply")
)

// authHints are substrings of provider messages that indicate a credential
// problem even when the HTTP status alone is ambiguous (invalid keys come
// back as 400 INVALID_ARGUMENT).
var authHints = []string{
	"API key",
	"API_KEY_INVALID",
	"PERMISSION_DENIED",
	"billing",
	"has not been used",
	"is disabled",
}

// normalizeError folds SDK and transport failures into the small taxonomy
// above. Anything unrecognized is treated as transient.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return normalizeStatus(gerr.Code, gerr.Message, err)
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

// normalizeStatus maps an HTTP status plus message onto the taxonomy. Shared
// by the SDK path and the raw REST search path.
func normalizeStatus(code int, message string, cause error) error {
	if cause == nil {
		cause = fmt.Errorf("status %d: %s", code, message)
	}
	switch {
	case code == 401 || code == 403:
		return fmt.Errorf("%w: %v", ErrAuth, cause)
	case code == 400 && looksLikeAuthProblem(message):
		return fmt.Errorf("%w: %v", ErrAuth, cause)
	case code == 429 || code >= 500:
		return fmt.Errorf("%w: %v", ErrTransient, cause)
	default:
		return fmt.Errorf("%w: %v", ErrTransient, cause)
	}
}

func looksLikeAuthProblem(message string) bool {
	for _, hint := range authHints {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return false
}
