package gemini

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/krishigpt/krishi-go/pkg/core"
)

// geminiError is the error envelope returned by the Gemini API.
type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// parseError maps a Gemini error response onto the shared taxonomy. A
// rejected credential is kept distinct from generic failures so the UI can
// prompt for re-entry rather than suggest a retry.
func (p *Provider) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var wire geminiError
	if err := json.Unmarshal(body, &wire); err != nil {
		e := core.NewProviderError("gemini", errors.New(string(body)))
		e.Message = string(body)
		e.Code = strconv.Itoa(resp.StatusCode)
		return e
	}

	var errType core.ErrorType
	switch wire.Error.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		errType = core.ErrCredentialInvalid
	case "INVALID_ARGUMENT", "FAILED_PRECONDITION":
		errType = core.ErrInvalidRequest
	case "NOT_FOUND":
		errType = core.ErrNotFound
	case "RESOURCE_EXHAUSTED":
		errType = core.ErrRateLimit
	case "UNAVAILABLE":
		errType = core.ErrOverloaded
	case "INTERNAL":
		errType = core.ErrAPI
	default:
		errType = core.ErrProvider
	}

	// The HTTP status wins when the body status is missing or stale.
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		errType = core.ErrRateLimit
	case http.StatusServiceUnavailable:
		errType = core.ErrOverloaded
	case http.StatusUnauthorized, http.StatusForbidden:
		errType = core.ErrCredentialInvalid
	}

	msg := wire.Error.Message
	var e *core.Error
	switch errType {
	case core.ErrCredentialInvalid:
		e = core.NewCredentialInvalidError(msg)
	case core.ErrInvalidRequest:
		e = core.NewInvalidRequestError(msg)
	case core.ErrRateLimit:
		e = core.NewRateLimitError(msg, retryAfterSeconds(resp))
	case core.ErrOverloaded:
		e = core.NewOverloadedError(msg)
	case core.ErrAPI:
		e = core.NewAPIError(msg)
	default:
		e = &core.Error{Type: errType, Message: msg}
	}
	e.Code = wire.Error.Status
	return e
}

// retryAfterSeconds reads the Retry-After header, zero when absent or not a
// plain seconds value.
func retryAfterSeconds(resp *http.Response) int {
	seconds, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}
