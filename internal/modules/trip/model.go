// README: Trip domain model: request, itinerary, events and validation rules.
package trip

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Pace controls how many activities the model schedules per day.
type Pace string

const (
	PaceRelaxed  Pace = "Relaxed"
	PaceModerate Pace = "Moderate"
	PacePacked   Pace = "Packed"
)

// Budget controls the venue/price tier language in generated content.
type Budget string

const (
	BudgetFriendly Budget = "Budget-Friendly"
	BudgetMidRange Budget = "Mid-Range"
	BudgetLuxury   Budget = "Luxury"
)

// DateLayout is the wire format for request dates.
const DateLayout = "2006-01-02"

// InterestCatalog is the fixed set of selectable interest labels.
var InterestCatalog = []string{
	"History & Culture",
	"Food & Culinary",
	"Art & Museums",
	"Outdoor & Nature",
	"Shopping & Fashion",
	"Nightlife & Entertainment",
	"Relaxation & Wellness",
	"Architecture",
	"Family-Friendly",
	"Technology & Innovation",
}

var (
	ErrInvalidRequest      = errors.New("invalid trip request")
	ErrMalformedResponse   = errors.New("model reply is not valid JSON")
	ErrNoJSONFound         = errors.New("model reply contains no JSON object")
	ErrIncompleteItinerary = errors.New("generated itinerary is incomplete")
	ErrAlreadySaved        = errors.New("itinerary already saved")
	ErrPermissionDenied    = errors.New("store denied access for this owner")
	ErrStoreUnavailable    = errors.New("trip store unavailable")
	ErrInFlight            = errors.New("a request is already in flight for this user")
)

// IndexMissingError reports that the backing store needs a composite index
// before the ordered saved-trips query can run. Link points at the console
// page where the index can be created, when the store provided one.
type IndexMissingError struct {
	Link string
}

func (e *IndexMissingError) Error() string {
	if e.Link == "" {
		return "saved-trips query requires a composite index"
	}
	return "saved-trips query requires a composite index: " + e.Link
}

// TripRequest carries one user submission. Immutable after construction;
// Validate must pass before the request reaches any client.
type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Interests   []string `json:"interests"`
	Pace        Pace     `json:"pace"`
	Budget      Budget   `json:"budget"`
}

// Activity is one scheduled entry within a day. All five fields are required
// in generated output.
type Activity struct {
	Time        string `json:"time" firestore:"time"`
	Description string `json:"description" firestore:"description"`
	Location    string `json:"location" firestore:"location"`
	Transit     string `json:"transit" firestore:"transit"`
	Type        string `json:"type" firestore:"type"`
}

// DailyPlan is one themed day of the itinerary. Day numbers start at 1 and
// map onto startDate + (Day-1).
type DailyPlan struct {
	Day          int        `json:"day" firestore:"day"`
	Date         string     `json:"date" firestore:"date"`
	Theme        string     `json:"theme" firestore:"theme"`
	Activities   []Activity `json:"activities" firestore:"activities"`
	Alternatives []string   `json:"alternatives" firestore:"alternatives"`
}

// Itinerary is the validated generation result. ID stays empty until the
// itinerary is persisted; the store assigns it exactly once.
type Itinerary struct {
	ID         string      `json:"id,omitempty" firestore:"-"`
	City       string      `json:"city" firestore:"city"`
	Country    string      `json:"country" firestore:"country"`
	DailyPlans []DailyPlan `json:"dailyPlans" firestore:"dailyPlans"`
}

// Event is a single web-grounded local event hit.
type Event struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Source attributes a web-grounded claim. URI is always non-empty; entries
// without one are dropped during extraction.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// FoundEvents is the events-search result. City echoes the request, not the
// model output.
type FoundEvents struct {
	Events  []Event  `json:"events"`
	Sources []Source `json:"sources"`
	City    string   `json:"city"`
}

// SavedTrip is an itinerary owned by a user, ordered by CreatedAt descending
// on retrieval.
type SavedTrip struct {
	Itinerary
	OwnerID   string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the local constraints of the request. It runs before any
// network call; a failure here must be observable as zero outbound calls.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q is not YYYY-MM-DD", ErrInvalidRequest, r.StartDate)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date %q is not YYYY-MM-DD", ErrInvalidRequest, r.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidRequest)
	}
	if len(r.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", ErrInvalidRequest)
	}
	for _, interest := range r.Interests {
		if !knownInterest(interest) {
			return fmt.Errorf("%w: unknown interest %q", ErrInvalidRequest, interest)
		}
	}
	switch r.Pace {
	case PaceRelaxed, PaceModerate, PacePacked:
	default:
		return fmt.Errorf("%w: unknown pace %q", ErrInvalidRequest, r.Pace)
	}
	switch r.Budget {
	case BudgetFriendly, BudgetMidRange, BudgetLuxury:
	default:
		return fmt.Errorf("%w: unknown budget %q", ErrInvalidRequest, r.Budget)
	}
	return nil
}

// Days returns the inclusive number of calendar days the request spans.
// Valid only after Validate has passed.
func (r TripRequest) Days() int {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func knownInterest(label string) bool {
	for _, known := range InterestCatalog {
		if known == label {
			return true
		}
	}
	return false
}
