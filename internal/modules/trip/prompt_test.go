// README: Tests for prompt rendering.
package trip

import (
	"strings"
	"testing"
)

func TestBuildItineraryPrompt_EmbedsEveryField(t *testing.T) {
	req := validRequest()
	prompt := BuildItineraryPrompt(req)

	for _, want := range []string{
		"Lisbon",
		"2024-07-20",
		"2024-07-22",
		"Food & Culinary, History & Culture",
		string(PaceModerate),
		string(BudgetMidRange),
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(prompt, "2-3 alternative suggestions") {
		t.Error("prompt should request 2-3 alternatives per day")
	}
	if !strings.Contains(prompt, "one daily plan per calendar day") {
		t.Error("prompt should request one plan per calendar day")
	}
}

func TestBuildItineraryPrompt_Deterministic(t *testing.T) {
	req := validRequest()
	if BuildItineraryPrompt(req) != BuildItineraryPrompt(req) {
		t.Error("prompt rendering must be deterministic")
	}
}

func TestBuildEventsPrompt(t *testing.T) {
	prompt := BuildEventsPrompt(validRequest())

	if !strings.Contains(prompt, `single key "events"`) {
		t.Error("events prompt should request a single events key")
	}
	if !strings.Contains(prompt, "between 2024-07-20 and 2024-07-22") {
		t.Error("events prompt should restrict the search to the date range")
	}
	if !strings.Contains(prompt, "never invent one") {
		t.Error("events prompt must forbid fabricated events")
	}
	if !strings.Contains(prompt, `empty "events" array`) {
		t.Error("events prompt must allow an empty result")
	}
}
