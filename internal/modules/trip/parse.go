// README: Parsing and structural validation of model replies.
package trip

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseItinerary decodes a raw model reply and runs the structural checks
// the provider-side schema cannot guarantee. The returned itinerary always
// has an empty ID.
func parseItinerary(raw string) (*Itinerary, error) {
	var it Itinerary
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &it); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	it.ID = ""
	if err := validateItinerary(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

// validateItinerary enforces the domain invariants: non-empty city/country,
// days numbered 1..N without gaps, every day themed and non-empty, every
// activity carrying all five fields.
func validateItinerary(it *Itinerary) error {
	if strings.TrimSpace(it.City) == "" {
		return fmt.Errorf("%w: missing city", ErrIncompleteItinerary)
	}
	if strings.TrimSpace(it.Country) == "" {
		return fmt.Errorf("%w: missing country", ErrIncompleteItinerary)
	}
	if len(it.DailyPlans) == 0 {
		return fmt.Errorf("%w: no daily plans", ErrIncompleteItinerary)
	}
	for i, plan := range it.DailyPlans {
		if plan.Day != i+1 {
			return fmt.Errorf("%w: day numbering broken at position %d (got day %d)", ErrIncompleteItinerary, i+1, plan.Day)
		}
		if strings.TrimSpace(plan.Theme) == "" {
			return fmt.Errorf("%w: day %d has no theme", ErrIncompleteItinerary, plan.Day)
		}
		if len(plan.Activities) == 0 {
			return fmt.Errorf("%w: day %d has no activities", ErrIncompleteItinerary, plan.Day)
		}
		for j, act := range plan.Activities {
			if err := validateActivity(act); err != nil {
				return fmt.Errorf("%w (day %d activity %d)", err, plan.Day, j+1)
			}
		}
	}
	return nil
}

func validateActivity(a Activity) error {
	switch {
	case strings.TrimSpace(a.Time) == "":
		return fmt.Errorf("%w: activity missing time", ErrIncompleteItinerary)
	case strings.TrimSpace(a.Description) == "":
		return fmt.Errorf("%w: activity missing description", ErrIncompleteItinerary)
	case strings.TrimSpace(a.Location) == "":
		return fmt.Errorf("%w: activity missing location", ErrIncompleteItinerary)
	case strings.TrimSpace(a.Transit) == "":
		return fmt.Errorf("%w: activity missing transit", ErrIncompleteItinerary)
	case strings.TrimSpace(a.Type) == "":
		return fmt.Errorf("%w: activity missing type", ErrIncompleteItinerary)
	}
	return nil
}

// extractJSONObject returns the first balanced {...} span in text. Grounded
// replies routinely wrap the JSON object in explanatory prose, so the span is
// located by brace counting with string-literal awareness.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONFound
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONFound
}

// parseEvents decodes the extracted events object. A missing or null "events"
// key is an empty result, not an error.
func parseEvents(jsonText string) ([]Event, error) {
	var payload struct {
		Events []Event `json:"events"`
	}
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Events == nil {
		return []Event{}, nil
	}
	return payload.Events, nil
}
