// README: Handlers for itinerary generation, events search and saved trips.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/http/middleware"
	"tripsmith/internal/modules/trip"
)

// generateTimeout bounds one model round-trip. Grounded search tends to be
// the slower of the two.
const generateTimeout = 90 * time.Second

// TripStore is the persistence surface the handler needs; satisfied by
// *trip.Store and by in-memory fakes in tests.
type TripStore interface {
	Save(ctx context.Context, it *trip.Itinerary, ownerID string) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]trip.SavedTrip, error)
}

type TripHandler struct {
	svc   *trip.Service
	store TripStore
	guard *trip.InflightGuard
}

func NewTripHandler(svc *trip.Service, store TripStore, guard *trip.InflightGuard) *TripHandler {
	return &TripHandler{svc: svc, store: store, guard: guard}
}

// Generate handles POST /api/itineraries.
func (h *TripHandler) Generate(c *gin.Context) {
	var req trip.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	release, err := h.guard.Acquire(c.Request.Context(), middleware.CallerUID(c), "generate")
	if err != nil {
		writeTripError(c, err)
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	it, err := h.svc.Generate(ctx, req)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

// FindEvents handles POST /api/events/search.
func (h *TripHandler) FindEvents(c *gin.Context) {
	var req trip.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	release, err := h.guard.Acquire(c.Request.Context(), middleware.CallerUID(c), "events")
	if err != nil {
		writeTripError(c, err)
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	found, err := h.svc.FindEvents(ctx, req)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, found)
}

// Save handles POST /api/trips. The owner is always the verified caller; a
// client cannot attribute a trip to anyone else.
func (h *TripHandler) Save(c *gin.Context) {
	var it trip.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.store.Save(c.Request.Context(), &it, middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /api/trips; most recent first.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.store.ListByOwner(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	if trips == nil {
		trips = []trip.SavedTrip{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}
