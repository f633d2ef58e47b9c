// README: Saved-trips store backed by Firestore.
package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tripsCollection = "trips"

// Store persists validated itineraries per owner. Saved trips are append-only
// and never mutated after creation; ordering is always by creation time
// descending. Ownership itself is enforced twice: here by writing the owner
// field from the verified caller, and by the store's own security rules.
type Store struct {
	client *firestore.Client
}

// NewStore returns a Store backed by the given Firestore client.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// tripDoc is the wire shape of one record in the trips collection. CreatedAt
// is assigned server-side on write.
type tripDoc struct {
	City       string      `firestore:"city"`
	Country    string      `firestore:"country"`
	DailyPlans []DailyPlan `firestore:"dailyPlans"`
	OwnerID    string      `firestore:"userId"`
	CreatedAt  time.Time   `firestore:"createdAt,serverTimestamp"`
}

// Save writes the itinerary under ownerID and returns the generated document
// id. An itinerary that already carries an id was saved before; re-saving is
// rejected so at most one record ever exists per generation.
func (s *Store) Save(ctx context.Context, it *Itinerary, ownerID string) (string, error) {
	if it.ID != "" {
		return "", ErrAlreadySaved
	}
	if ownerID == "" {
		return "", ErrPermissionDenied
	}

	ref, _, err := s.client.Collection(tripsCollection).Add(ctx, tripDoc{
		City:       it.City,
		Country:    it.Country,
		DailyPlans: it.DailyPlans,
		OwnerID:    ownerID,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

// ListByOwner returns the owner's saved trips, most recent first. A save
// performed immediately before the call is visible (read-after-write within
// a session).
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]SavedTrip, error) {
	if ownerID == "" {
		return nil, ErrPermissionDenied
	}

	iter := s.client.Collection(tripsCollection).
		Where("userId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var trips []SavedTrip
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var d tripDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("%w: decoding trip %s: %v", ErrStoreUnavailable, doc.Ref.ID, err)
		}
		trips = append(trips, SavedTrip{
			Itinerary: Itinerary{
				ID:         doc.Ref.ID,
				City:       d.City,
				Country:    d.Country,
				DailyPlans: d.DailyPlans,
			},
			OwnerID:   d.OwnerID,
			CreatedAt: d.CreatedAt,
		})
	}
	return trips, nil
}

// mapStoreError folds Firestore failures into the store error taxonomy.
func mapStoreError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	switch st.Code() {
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case codes.FailedPrecondition:
		if strings.Contains(st.Message(), "index") {
			return &IndexMissingError{Link: extractIndexLink(st.Message())}
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// extractIndexLink pulls the console URL out of a failed-precondition
// message so callers can self-serve the index creation.
func extractIndexLink(message string) string {
	start := strings.Index(message, "https://")
	if start < 0 {
		return ""
	}
	link := message[start:]
	if end := strings.IndexAny(link, " \n\t"); end >= 0 {
		link = link[:end]
	}
	return link
}
