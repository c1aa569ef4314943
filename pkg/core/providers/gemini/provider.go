// Package gemini implements the Google Gemini calling convention: the REST
// generateContent surface for structured output, grounded retrieval and
// speech, and the BidiGenerateContent websocket surface for live audio.
package gemini

import (
	"net/http"

	"github.com/krishigpt/krishi-go/pkg/core/types"
)

const (
	// DefaultBaseURL is the default Gemini REST endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultLiveURL is the default Gemini live websocket endpoint.
	DefaultLiveURL = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"
)

// Provider talks to the Gemini API. It holds the credential and is safe for
// concurrent use; construct once and share.
type Provider struct {
	apiKey     string
	baseURL    string
	liveURL    string
	httpClient *http.Client
}

// New creates a new Gemini provider.
func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		liveURL:    DefaultLiveURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "gemini"
}

// GenerateRequest is one generateContent invocation. The SDK composes the
// prompt; this type carries everything the wire request needs.
type GenerateRequest struct {
	Model  string
	System string
	Prompt string

	// ResponseSchema constrains output to JSON of this shape.
	ResponseSchema *Schema

	// AudioOutput requests an audio-modality response (TTS models).
	AudioOutput bool
	Voice       string

	// Search augmentation for grounding-stage calls.
	WebSearch  bool
	MapsSearch bool
	LatLng     *types.Coordinates

	// ThinkingBudget enables extended reasoning when non-nil.
	ThinkingBudget *int32

	Temperature *float64
}

// GenerateResponse is the translated result of one generateContent call.
type GenerateResponse struct {
	// Text is the concatenated text parts of the first candidate.
	Text string

	// AudioData is the base64 payload of the first inline audio part, with
	// its MIME type (for example "audio/pcm;rate=24000").
	AudioData string
	AudioMIME string

	// Sources are the grounding citations attached to the candidate.
	Sources []types.SourceRef

	Usage Usage
}

// Usage reports token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
