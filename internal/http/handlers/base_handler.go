// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/ai"
	"tripsmith/internal/modules/account"
	"tripsmith/internal/modules/trip"
)

type errorResponse struct {
	Error     string `json:"error"`
	IndexLink string `json:"index_link,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeTripError maps the core error taxonomy onto HTTP statuses. Provider
// and store outages are 503 (safe to resubmit); unusable model replies are
// 502 since the upstream answered but with garbage.
func writeTripError(c *gin.Context, err error) {
	var indexErr *trip.IndexMissingError
	switch {
	case errors.Is(err, trip.ErrInvalidRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrAlreadySaved), errors.Is(err, trip.ErrInFlight):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, trip.ErrPermissionDenied):
		writeError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &indexErr):
		writeJSON(c, http.StatusServiceUnavailable, errorResponse{
			Error:     "saved trips need a database index before they can be listed",
			IndexLink: indexErr.Link,
		})
	case errors.Is(err, trip.ErrMalformedResponse),
		errors.Is(err, trip.ErrNoJSONFound),
		errors.Is(err, trip.ErrIncompleteItinerary),
		errors.Is(err, ai.ErrEmptyReply):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ai.ErrNotConfigured), errors.Is(err, ai.ErrAuth):
		writeError(c, http.StatusServiceUnavailable, "generation is unavailable: provider credentials are missing or rejected")
	case errors.Is(err, ai.ErrTransient), errors.Is(err, trip.ErrStoreUnavailable):
		writeError(c, http.StatusServiceUnavailable, "temporary failure, please try again")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// writeAccountError maps identity failures onto HTTP statuses.
func writeAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, account.ErrWeakPassword):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrEmailTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrNotConfigured), errors.Is(err, account.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
