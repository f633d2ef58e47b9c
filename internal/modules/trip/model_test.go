// README: Tests for request validation and day counting.
package trip

import (
	"errors"
	"testing"
)

func validRequest() TripRequest {
	return TripRequest{
		Destination: "Lisbon",
		StartDate:   "2024-07-20",
		EndDate:     "2024-07-22",
		Interests:   []string{"Food & Culinary", "History & Culture"},
		Pace:        PaceModerate,
		Budget:      BudgetMidRange,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TripRequest)
	}{
		{"empty destination", func(r *TripRequest) { r.Destination = "  " }},
		{"bad start date", func(r *TripRequest) { r.StartDate = "20/07/2024" }},
		{"bad end date", func(r *TripRequest) { r.EndDate = "tomorrow" }},
		{"end before start", func(r *TripRequest) { r.StartDate = "2024-07-22"; r.EndDate = "2024-07-20" }},
		{"no interests", func(r *TripRequest) { r.Interests = nil }},
		{"unknown interest", func(r *TripRequest) { r.Interests = []string{"Spelunking"} }},
		{"unknown pace", func(r *TripRequest) { r.Pace = "Frantic" }},
		{"unknown budget", func(r *TripRequest) { r.Budget = "Free" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			err := req.Validate()
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-07-20", "2024-07-20", 1},
		{"2024-07-20", "2024-07-22", 3},
		{"2024-12-30", "2025-01-02", 4},
	}
	for _, tc := range cases {
		req := validRequest()
		req.StartDate, req.EndDate = tc.start, tc.end
		if got := req.Days(); got != tc.want {
			t.Errorf("Days(%s..%s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}
