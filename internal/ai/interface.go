// README: Provider contract for the generative backend.
package ai

import "context"

// Provider defines the two calls the trip service makes against the
// generative backend. Implementations normalize provider failures into the
// error kinds in errors.go and never retry on their own; retry is a caller
// decision surfaced as a fresh submission.
type Provider interface {
	// GenerateItineraryJSON runs a schema-constrained generation and returns
	// the raw JSON reply text.
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)

	// SearchGrounded runs a web-grounded generation. The reply may contain
	// prose around the JSON payload; grounding chunks arrive separately and
	// carry the citation sources.
	SearchGrounded(ctx context.Context, prompt string) (string, []GroundingChunk, error)
}
