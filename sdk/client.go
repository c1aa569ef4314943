// Package krishi provides the Krishi GPT SDK for Go.
//
// The SDK runs in-process and calls the Gemini API directly: structured crop
// advisories, weather forecasts, text-to-speech and live voice conversations.
package krishi

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
)

// Model tiers. The default tier favors latency; the thinking tier trades
// latency for deeper reasoning on advisory generation.
const (
	ModelDefault  = "gemini-2.5-flash"
	ModelThinking = "gemini-2.5-pro"
	ModelLive     = "gemini-2.5-flash-native-audio-preview-09-2025"

	thinkingBudgetTokens int32 = 32768
)

// Client is the main entry point for the SDK.
type Client struct {
	provider *gemini.Provider
	logger   *slog.Logger

	apiKey     string
	httpClient *http.Client
	baseURL    string
	liveURL    string
}

// NewClient creates a new client. The API key is read from the environment
// (KRISHI_API_KEY, falling back to GEMINI_API_KEY) unless supplied via
// WithAPIKey. A missing key is an error up front rather than on first call,
// so the UI can show a configuration message instead of a request failure.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		c.apiKey = os.Getenv("KRISHI_API_KEY")
	}
	if c.apiKey == "" {
		c.apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.apiKey == "" {
		return nil, core.NewCredentialMissingError("set KRISHI_API_KEY or GEMINI_API_KEY")
	}

	var provOpts []gemini.Option
	if c.httpClient != nil {
		provOpts = append(provOpts, gemini.WithHTTPClient(c.httpClient))
	}
	if c.baseURL != "" {
		provOpts = append(provOpts, gemini.WithBaseURL(c.baseURL))
	}
	if c.liveURL != "" {
		provOpts = append(provOpts, gemini.WithLiveURL(c.liveURL))
	}
	c.provider = gemini.New(c.apiKey, provOpts...)

	return c, nil
}
