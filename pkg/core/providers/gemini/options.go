package gemini

import "net/http"

// Option configures the provider.
type Option func(*Provider)

// WithBaseURL overrides the REST endpoint (used by tests).
func WithBaseURL(url string) Option {
	return func(p *Provider) {
		p.baseURL = url
	}
}

// WithLiveURL overrides the live websocket endpoint (used by tests).
func WithLiveURL(url string) Option {
	return func(p *Provider) {
		p.liveURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}
