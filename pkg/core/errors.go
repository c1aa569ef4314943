// Package core holds the error taxonomy shared by the Gemini provider and
// the Krishi SDK.
package core

import (
	"errors"
	"fmt"
)

// ErrorType categorizes errors.
type ErrorType string

const (
	ErrCredentialMissing ErrorType = "credential_missing"
	ErrCredentialInvalid ErrorType = "credential_invalid"
	ErrInvalidRequest    ErrorType = "invalid_request_error"
	ErrNotFound          ErrorType = "not_found_error"
	ErrRateLimit         ErrorType = "rate_limit_error"
	ErrOverloaded        ErrorType = "overloaded_error"
	ErrAPI               ErrorType = "api_error"
	ErrProvider          ErrorType = "provider_error"
	ErrEmptyResponse     ErrorType = "empty_model_response"
	ErrMalformedOutput   ErrorType = "malformed_model_output"
	ErrNoAudioData       ErrorType = "no_audio_data"
	ErrMicPermission     ErrorType = "mic_permission_denied"
	ErrUnsupportedSchema ErrorType = "unsupported_schema_type"
)

// Error represents a categorized failure. Presentation layers switch on Type
// to pick a recovery affordance instead of showing one generic banner.
type Error struct {
	Type          ErrorType `json:"type"`
	Message       string    `json:"message"`
	Code          string    `json:"code,omitempty"`
	ProviderError any       `json:"provider_error,omitempty"`
	RetryAfter    *int      `json:"retry_after,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code: %s)", e.Type, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is reports whether target is a *Error with the same Type. This lets
// callers match sentinel instances with errors.Is without comparing messages.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Type == other.Type
}

// IsRetryable returns true if a later identical call could plausibly succeed.
// The core itself never retries; this is advisory for callers.
func (e *Error) IsRetryable() bool {
	switch e.Type {
	case ErrRateLimit, ErrOverloaded, ErrAPI:
		return true
	default:
		return false
	}
}

// Unwrap returns the underlying error for error wrapping.
func (e *Error) Unwrap() error {
	if ue, ok := e.ProviderError.(error); ok {
		return ue
	}
	return nil
}

// NewCredentialMissingError creates the distinguished configuration error.
// The "credential not configured" prefix is a contract: UIs match on it to
// render setup instructions instead of a generic failure.
func NewCredentialMissingError(detail string) *Error {
	msg := "credential not configured"
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &Error{Type: ErrCredentialMissing, Message: msg}
}

// NewCredentialInvalidError creates an error for a rejected credential.
func NewCredentialInvalidError(message string) *Error {
	return &Error{Type: ErrCredentialInvalid, Message: message}
}

// NewInvalidRequestError creates an invalid request error.
func NewInvalidRequestError(message string) *Error {
	return &Error{Type: ErrInvalidRequest, Message: message}
}

// NewRateLimitError creates a rate limit error.
func NewRateLimitError(message string, retryAfter int) *Error {
	return &Error{Type: ErrRateLimit, Message: message, RetryAfter: &retryAfter}
}

// NewAPIError creates a generic API error.
func NewAPIError(message string) *Error {
	return &Error{Type: ErrAPI, Message: message}
}

// NewOverloadedError creates an overloaded error.
func NewOverloadedError(message string) *Error {
	return &Error{Type: ErrOverloaded, Message: message}
}

// NewProviderError creates a provider-specific error.
func NewProviderError(provider string, underlying error) *Error {
	return &Error{
		Type:          ErrProvider,
		Message:       fmt.Sprintf("%s: %v", provider, underlying),
		ProviderError: underlying,
	}
}

// NewEmptyResponseError creates an error for a structured call that returned
// no text at all.
func NewEmptyResponseError(stage string) *Error {
	return &Error{Type: ErrEmptyResponse, Message: fmt.Sprintf("%s: model returned no text", stage)}
}

// NewMalformedOutputError creates an error for model text that failed to
// parse or validate against the expected shape. No partial recovery is
// attempted.
func NewMalformedOutputError(stage string, underlying error) *Error {
	return &Error{
		Type:          ErrMalformedOutput,
		Message:       fmt.Sprintf("%s: %v", stage, underlying),
		ProviderError: underlying,
	}
}

// NewNoAudioDataError creates an error for a speech call without an audio
// payload.
func NewNoAudioDataError() *Error {
	return &Error{Type: ErrNoAudioData, Message: "model response carried no audio data"}
}

// NewMicPermissionError creates an error for denied microphone access.
func NewMicPermissionError(underlying error) *Error {
	return &Error{
		Type:          ErrMicPermission,
		Message:       fmt.Sprintf("microphone permission denied: %v", underlying),
		ProviderError: underlying,
	}
}

// NewUnsupportedSchemaError flags a schema kind the converter cannot map.
// With the static schema trees this indicates a programming error, never a
// runtime condition.
func NewUnsupportedSchemaError(kind string) *Error {
	return &Error{Type: ErrUnsupportedSchema, Message: fmt.Sprintf("unsupported schema type: %s", kind)}
}
