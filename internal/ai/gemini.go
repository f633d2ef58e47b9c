// README: Gemini provider; schema-constrained generation via the official SDK.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiModel is used for both generation modes. Flash keeps latency and cost
// low while still following the response schema reliably.
const geminiModel = "gemini-2.5-flash"

// GeminiProvider implements Provider using Google's Gemini models. A provider
// built without an API key stays usable but answers every call with
// ErrNotConfigured, so a missing credential surfaces as a normal request
// failure instead of a startup crash.
type GeminiProvider struct {
	apiKey string
	client *genai.Client
	model  *genai.GenerativeModel

	// REST pieces for the web-grounded search path; see search.go.
	httpClient     *http.Client
	searchEndpoint string
}

// NewGeminiProvider initializes a Gemini client. apiKey may be empty; the
// returned provider is then in the unconfigured state.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	p := &GeminiProvider{
		apiKey:         strings.TrimSpace(apiKey),
		httpClient:     &http.Client{Timeout: 60 * time.Second},
		searchEndpoint: defaultSearchEndpoint,
	}
	if p.apiKey == "" {
		return p, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Constrained decoding: pure JSON matching the itinerary schema.
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = itinerarySchema()

	// Creative but structured output.
	model.SetTemperature(0.4)

	p.client = client
	p.model = model
	return p, nil
}

// Configured reports whether an API key was injected.
func (p *GeminiProvider) Configured() bool {
	return p.apiKey != ""
}

// Close cleans up the underlying SDK client.
func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

// GenerateItineraryJSON sends the prompt in structured-output mode and
// returns the raw JSON reply text.
func (p *GeminiProvider) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	if !p.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", normalizeError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			reply.WriteString(string(txt))
		}
	}

	// JSON mode should already be fence-free; trim defensively anyway.
	clean := cleanJSONString(reply.String())
	if clean == "" {
		return "", ErrEmptyReply
	}
	return clean, nil
}

// itinerarySchema is the structural constraint the model must satisfy in
// generation mode. It mirrors the Itinerary domain type field for field.
func itinerarySchema() *genai.Schema {
	activitySchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"time":        {Type: genai.TypeString, Description: "Suggested time for the activity (e.g., '9:00 AM - 11:00 AM')."},
			"description": {Type: genai.TypeString, Description: "A detailed description of the activity."},
			"location":    {Type: genai.TypeString, Description: "The name and address of the location."},
			"transit":     {Type: genai.TypeString, Description: "A short hint about how to get there (e.g., '15-min walk from last activity', 'Metro Line 1')."},
			"type":        {Type: genai.TypeString, Description: "A category for the activity (e.g., 'Food & Culinary', 'Museum', 'Outdoor')."},
		},
		Required: []string{"time", "description", "location", "transit", "type"},
	}

	dailyPlanSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":   {Type: genai.TypeInteger, Description: "The day number of the trip (e.g., 1, 2, 3)."},
			"date":  {Type: genai.TypeString, Description: "The specific date for this day's plan (e.g., 'July 20, 2024')."},
			"theme": {Type: genai.TypeString, Description: "A creative theme for the day's activities (e.g., 'Historical Heartbeat')."},
			"activities": {
				Type:        genai.TypeArray,
				Description: "A list of activities for the day.",
				Items:       activitySchema,
			},
			"alternatives": {
				Type:        genai.TypeArray,
				Description: "A few alternative suggestions if the user wants to swap an activity.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"day", "date", "theme", "activities", "alternatives"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"city":    {Type: genai.TypeString, Description: "The city for the itinerary."},
			"country": {Type: genai.TypeString, Description: "The country where the city is located."},
			"dailyPlans": {
				Type:        genai.TypeArray,
				Description: "An array of daily plans for the trip.",
				Items:       dailyPlanSchema,
			},
		},
		Required: []string{"city", "country", "dailyPlans"},
	}
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```).
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
