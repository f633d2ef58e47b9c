// README: Provider-side metadata structures.
package ai

// WebSource is a web reference attached to a grounding chunk.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingChunk is one entry of the grounding metadata returned alongside a
// web-grounded reply. Web may be nil for non-web chunk kinds.
type GroundingChunk struct {
	Web *WebSource `json:"web,omitempty"`
}
