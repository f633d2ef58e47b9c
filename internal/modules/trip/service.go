// README: Trip service; orchestrates prompt building, generation and validation.
package trip

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripsmith/internal/ai"
)

// DestinationResolver canonicalizes a free-text destination into a
// "City, Country" form. Resolution is best-effort; failures fall back to the
// raw input and are never surfaced to the caller.
type DestinationResolver interface {
	Resolve(ctx context.Context, destination string) (string, error)
}

// Service is the generation and events core. One call per user action, no
// automatic retries; the provider is treated as a non-deterministic oracle.
type Service struct {
	provider ai.Provider
	resolver DestinationResolver
	log      *zap.Logger
}

// NewService wires the trip core. resolver may be nil when no maps client is
// configured; log may be nil in tests.
func NewService(provider ai.Provider, resolver DestinationResolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, resolver: resolver, log: log}
}

// Generate validates the request, renders the prompt, runs the
// schema-constrained generation and returns the validated itinerary with an
// empty ID. Failing validation means zero outbound calls.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Destination = s.resolveDestination(ctx, req.Destination)

	raw, err := s.provider.GenerateItineraryJSON(ctx, BuildItineraryPrompt(req))
	if err != nil {
		return nil, err
	}

	it, err := parseItinerary(raw)
	if err != nil {
		return nil, err
	}
	if days := req.Days(); len(it.DailyPlans) != days {
		return nil, fmt.Errorf("%w: expected %d daily plans for the date range, got %d",
			ErrIncompleteItinerary, days, len(it.DailyPlans))
	}
	return it, nil
}

// FindEvents validates the request and runs the web-grounded events search.
// The reply may wrap its JSON object in prose; only the first balanced span
// is parsed. City always echoes the request since the model is not
// authoritative on echoing its input.
func (s *Service) FindEvents(ctx context.Context, req TripRequest) (*FoundEvents, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, chunks, err := s.provider.SearchGrounded(ctx, BuildEventsPrompt(req))
	if err != nil {
		return nil, err
	}

	span, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	events, err := parseEvents(span)
	if err != nil {
		return nil, err
	}

	return &FoundEvents{
		Events:  events,
		Sources: extractSources(chunks),
		City:    req.Destination,
	}, nil
}

// extractSources maps grounding chunks into citation sources. Entries
// without a URI are dropped; an empty title defaults to "Source".
func extractSources(chunks []ai.GroundingChunk) []Source {
	sources := make([]Source, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Source"
		}
		sources = append(sources, Source{URI: chunk.Web.URI, Title: title})
	}
	return sources
}

func (s *Service) resolveDestination(ctx context.Context, destination string) string {
	if s.resolver == nil {
		return destination
	}
	resolved, err := s.resolver.Resolve(ctx, destination)
	if err != nil || resolved == "" {
		s.log.Debug("destination resolution failed, using raw input",
			zap.String("destination", destination), zap.Error(err))
		return destination
	}
	return resolved
}
