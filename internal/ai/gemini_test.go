// README: Tests for JSON cleanup, schema shape and error normalization.
package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

func TestCleanJSONString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`  {"a":1}  `, `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tc := range cases {
		if got := cleanJSONString(tc.in); got != tc.want {
			t.Errorf("cleanJSONString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestItinerarySchema_Shape(t *testing.T) {
	schema := itinerarySchema()

	if schema.Type != genai.TypeObject {
		t.Fatal("root schema must be an object")
	}
	for _, key := range []string{"city", "country", "dailyPlans"} {
		if _, ok := schema.Properties[key]; !ok {
			t.Errorf("root schema missing %q", key)
		}
	}
	activity := schema.Properties["dailyPlans"].Items.Properties["activities"].Items
	required := map[string]bool{}
	for _, field := range activity.Required {
		required[field] = true
	}
	for _, field := range []string{"time", "description", "location", "transit", "type"} {
		if !required[field] {
			t.Errorf("activity schema must require %q", field)
		}
	}
}

func TestUnconfiguredProvider(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), "  ")
	if err != nil {
		t.Fatalf("empty key must not fail construction: %v", err)
	}
	if p.Configured() {
		t.Fatal("provider should be unconfigured")
	}
	if _, err := p.GenerateItineraryJSON(context.Background(), "prompt"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, _, err := p.SearchGrounded(context.Background(), "prompt"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"forbidden", &googleapi.Error{Code: 403, Message: "forbidden"}, ErrAuth},
		{"unauthorized", &googleapi.Error{Code: 401, Message: "unauthorized"}, ErrAuth},
		{"invalid key as 400", &googleapi.Error{Code: 400, Message: "API key not valid. Please pass a valid API key."}, ErrAuth},
		{"rate limited", &googleapi.Error{Code: 429, Message: "quota exceeded"}, ErrTransient},
		{"server error", &googleapi.Error{Code: 500, Message: "internal"}, ErrTransient},
		{"other 400", &googleapi.Error{Code: 400, Message: "bad field"}, ErrTransient},
		{"deadline", context.DeadlineExceeded, ErrTransient},
		{"plain network error", errors.New("connection refused"), ErrTransient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeError(tc.err); !errors.Is(got, tc.want) {
				t.Errorf("normalizeError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
