// Package server exposes the advisory SDK and the mocked account features
// over HTTP for the web client.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krishigpt/krishi-go/internal/store"
	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/types"
	krishi "github.com/krishigpt/krishi-go/sdk"
)

// Generator is the slice of the SDK the server depends on.
type Generator interface {
	GenerateAdvisory(ctx context.Context, req *types.AdvisoryRequest) (*krishi.AdvisoryResult, error)
	GetWeather(ctx context.Context, location string, locale krishi.Locale) (*types.WeatherForecast, error)
	Synthesize(ctx context.Context, text string, locale krishi.Locale) (*krishi.SpeechResult, error)
}

// Server is the HTTP API.
type Server struct {
	generator Generator
	store     *store.Store
	logger    *slog.Logger
	metrics   *metrics
}

// New builds the server and its routes.
func New(generator Generator, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		generator: generator,
		store:     st,
		logger:    logger,
		metrics:   newMetrics(),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.middleware)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/advisory", s.handleAdvisory)
		r.Post("/weather", s.handleWeather)
		r.Post("/speech", s.handleSpeech)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/feedback", s.handleFeedback)
		r.Post("/notify/sms", s.handleSMS)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorBody is the JSON error envelope. Kind carries the taxonomy value so
// the client can branch without string matching (except the credential
// message contract, which rides in message).
type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var body errorBody
	status := http.StatusInternalServerError

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		body.Error.Kind = string(coreErr.Type)
		body.Error.Message = coreErr.Message
		status = statusForError(coreErr.Type)
	} else {
		body.Error.Kind = "internal"
		body.Error.Message = err.Error()
	}

	s.logger.Error("request failed",
		"path", r.URL.Path, "kind", body.Error.Kind, "error", err)
	writeJSON(w, status, body)
}

func statusForError(t core.ErrorType) int {
	switch t {
	case core.ErrCredentialMissing, core.ErrCredentialInvalid:
		return http.StatusUnauthorized
	case core.ErrInvalidRequest:
		return http.StatusBadRequest
	case core.ErrNotFound:
		return http.StatusNotFound
	case core.ErrRateLimit:
		return http.StatusTooManyRequests
	case core.ErrOverloaded:
		return http.StatusServiceUnavailable
	case core.ErrEmptyResponse, core.ErrMalformedOutput, core.ErrNoAudioData:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return core.NewInvalidRequestError("invalid request body: " + err.Error())
	}
	return nil
}
