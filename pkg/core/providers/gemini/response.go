package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/krishigpt/krishi-go/pkg/core/types"
)

// Wire response types.

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content           geminiContent      `json:"content"`
	FinishReason      string             `json:"finishReason"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type groundingMetadata struct {
	WebSearchQueries []string         `json:"webSearchQueries,omitempty"`
	GroundingChunks  []groundingChunk `json:"groundingChunks,omitempty"`
}

type groundingChunk struct {
	Web  *webChunk `json:"web,omitempty"`
	Maps *webChunk `json:"maps,omitempty"`
}

type webChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// parseResponse translates a Gemini response body.
func (p *Provider) parseResponse(body []byte) (*GenerateResponse, error) {
	var wire geminiResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(wire.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	candidate := wire.Candidates[0]
	resp := &GenerateResponse{}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
		if part.InlineData != nil && resp.AudioData == "" &&
			strings.HasPrefix(part.InlineData.MIMEType, "audio/") {
			resp.AudioData = part.InlineData.Data
			resp.AudioMIME = part.InlineData.MIMEType
		}
	}
	resp.Text = text.String()

	if candidate.GroundingMetadata != nil {
		resp.Sources = parseGroundingSources(candidate.GroundingMetadata)
	}

	if wire.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  wire.UsageMetadata.PromptTokenCount,
			OutputTokens: wire.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  wire.UsageMetadata.TotalTokenCount,
		}
	}

	return resp, nil
}

// parseGroundingSources flattens web and maps grounding chunks into citation
// records, dropping chunks with neither a URI nor a title.
func parseGroundingSources(meta *groundingMetadata) []types.SourceRef {
	sources := make([]types.SourceRef, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		ref := chunk.Web
		if ref == nil {
			ref = chunk.Maps
		}
		if ref == nil || (ref.URI == "" && ref.Title == "") {
			continue
		}
		sources = append(sources, types.SourceRef{URI: ref.URI, Title: ref.Title})
	}
	if len(sources) == 0 {
		return nil
	}
	return sources
}
