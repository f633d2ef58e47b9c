// README: Web-grounded search call against the Generative Language REST API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// The SDK's structured-output path and the google_search tool don't combine
// on this API surface, so the grounded call goes straight to the REST
// endpoint and reads the grounding metadata off the wire.
const defaultSearchEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/" + geminiModel + ":generateContent"

type searchRequest struct {
	Contents []searchContent `json:"contents"`
	Tools    []searchTool    `json:"tools"`
}

type searchContent struct {
	Parts []searchPart `json:"parts"`
}

type searchPart struct {
	Text string `json:"text"`
}

type searchTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type searchResponse struct {
	Candidates []struct {
		Content struct {
			Parts []searchPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []GroundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// SearchGrounded sends the prompt with the google_search tool enabled and
// returns the reply text together with the grounding chunks. There is no
// structural schema enforcement in this mode; callers must tolerate prose
// around the JSON payload.
func (p *GeminiProvider) SearchGrounded(ctx context.Context, prompt string) (string, []GroundingChunk, error) {
	if !p.Configured() {
		return "", nil, ErrNotConfigured
	}

	body, err := json.Marshal(searchRequest{
		Contents: []searchContent{{Parts: []searchPart{{Text: prompt}}}},
		Tools:    []searchTool{{}},
	})
	if err != nil {
		return "", nil, fmt.Errorf("gemini: marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.searchEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("gemini: build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", nil, normalizeError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, normalizeError(err)
	}

	var sr searchResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", nil, normalizeStatus(resp.StatusCode, string(raw), nil)
		}
		return "", nil, fmt.Errorf("gemini: unmarshal search response: %w", err)
	}
	if sr.Error != nil {
		return "", nil, normalizeStatus(sr.Error.Code, sr.Error.Message, fmt.Errorf("gemini: api error: %s", sr.Error.Message))
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, normalizeStatus(resp.StatusCode, string(raw), nil)
	}
	if len(sr.Candidates) == 0 {
		return "", nil, ErrEmptyReply
	}

	var text strings.Builder
	for _, part := range sr.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", nil, ErrEmptyReply
	}

	return text.String(), sr.Candidates[0].GroundingMetadata.GroundingChunks, nil
}
