// README: Tests for store invariants and Firestore error mapping.
package trip

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSave_RejectsAlreadySaved(t *testing.T) {
	// The save-once check runs before any client access, so a nil client is safe.
	store := NewStore(nil)
	it := &Itinerary{ID: "existing", City: "Lisbon", Country: "Portugal"}

	if _, err := store.Save(context.Background(), it, "user1"); !errors.Is(err, ErrAlreadySaved) {
		t.Errorf("expected ErrAlreadySaved, got %v", err)
	}
}

func TestSave_RejectsMissingOwner(t *testing.T) {
	store := NewStore(nil)
	it := &Itinerary{City: "Lisbon", Country: "Portugal"}

	if _, err := store.Save(context.Background(), it, ""); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestMapStoreError(t *testing.T) {
	indexMsg := "The query requires an index. You can create it here: https://console.firebase.google.com/project/demo/firestore/indexes?create=abc"

	cases := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "permission denied",
			err:  status.Error(codes.PermissionDenied, "Missing or insufficient permissions."),
			check: func(t *testing.T, got error) {
				if !errors.Is(got, ErrPermissionDenied) {
					t.Errorf("expected ErrPermissionDenied, got %v", got)
				}
			},
		},
		{
			name: "index missing carries link",
			err:  status.Error(codes.FailedPrecondition, indexMsg),
			check: func(t *testing.T, got error) {
				var indexErr *IndexMissingError
				if !errors.As(got, &indexErr) {
					t.Fatalf("expected IndexMissingError, got %v", got)
				}
				if indexErr.Link != "https://console.firebase.google.com/project/demo/firestore/indexes?create=abc" {
					t.Errorf("unexpected link %q", indexErr.Link)
				}
			},
		},
		{
			name: "other precondition is transient",
			err:  status.Error(codes.FailedPrecondition, "some other precondition"),
			check: func(t *testing.T, got error) {
				if !errors.Is(got, ErrStoreUnavailable) {
					t.Errorf("expected ErrStoreUnavailable, got %v", got)
				}
			},
		},
		{
			name: "unavailable is transient",
			err:  status.Error(codes.Unavailable, "backend down"),
			check: func(t *testing.T, got error) {
				if !errors.Is(got, ErrStoreUnavailable) {
					t.Errorf("expected ErrStoreUnavailable, got %v", got)
				}
			},
		},
		{
			name: "plain error is transient",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, got error) {
				if !errors.Is(got, ErrStoreUnavailable) {
					t.Errorf("expected ErrStoreUnavailable, got %v", got)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, mapStoreError(tc.err))
		})
	}
}

func TestExtractIndexLink(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"create it here: https://console.firebase.google.com/x?a=b then retry", "https://console.firebase.google.com/x?a=b"},
		{"https://example.com/index", "https://example.com/index"},
		{"no link at all", ""},
	}
	for _, tc := range cases {
		if got := extractIndexLink(tc.message); got != tc.want {
			t.Errorf("extractIndexLink(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
