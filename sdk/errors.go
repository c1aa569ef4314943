package krishi

import (
	"errors"

	"github.com/krishigpt/krishi-go/pkg/core"
)

// Error is the SDK error type. See pkg/core for the full taxonomy.
type Error = core.Error

// Error type constants re-exported for callers that switch on failure class.
const (
	ErrCredentialMissing = core.ErrCredentialMissing
	ErrCredentialInvalid = core.ErrCredentialInvalid
	ErrInvalidRequest    = core.ErrInvalidRequest
	ErrNotFound          = core.ErrNotFound
	ErrRateLimit         = core.ErrRateLimit
	ErrOverloaded        = core.ErrOverloaded
	ErrEmptyResponse     = core.ErrEmptyResponse
	ErrMalformedOutput   = core.ErrMalformedOutput
	ErrNoAudioData       = core.ErrNoAudioData
	ErrMicPermission     = core.ErrMicPermission
)

// CredentialMissing is a sentinel for errors.Is checks against the
// configuration failure, matched by error kind.
var CredentialMissing = core.NewCredentialMissingError("")

// IsCredentialMissing reports whether err means no API key was configured.
func IsCredentialMissing(err error) bool {
	var coreErr *core.Error
	return errors.As(err, &coreErr) && coreErr.Type == core.ErrCredentialMissing
}

// IsRetryable reports whether err is worth retrying (rate limit, overload,
// transient API failure).
func IsRetryable(err error) bool {
	var coreErr *core.Error
	return errors.As(err, &coreErr) && coreErr.IsRetryable()
}
