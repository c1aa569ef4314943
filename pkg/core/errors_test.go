package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCredentialMissingMessageContract(t *testing.T) {
	err := NewCredentialMissingError("set GEMINI_API_KEY")
	if !strings.HasPrefix(err.Message, "credential not configured") {
		t.Fatalf("message = %q, want %q prefix", err.Message, "credential not configured")
	}

	bare := NewCredentialMissingError("")
	if bare.Message != "credential not configured" {
		t.Fatalf("bare message = %q", bare.Message)
	}
}

func TestErrorIsMatchesByType(t *testing.T) {
	err := NewCredentialMissingError("set GEMINI_API_KEY")
	sentinel := &Error{Type: ErrCredentialMissing}
	if !errors.Is(err, sentinel) {
		t.Fatal("errors.Is should match on Type")
	}

	wrapped := fmt.Errorf("starting session: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Fatal("errors.Is should match through wrapping")
	}

	other := &Error{Type: ErrRateLimit}
	if errors.Is(err, other) {
		t.Fatal("errors.Is must not match a different Type")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		typ  ErrorType
		want bool
	}{
		{ErrRateLimit, true},
		{ErrOverloaded, true},
		{ErrAPI, true},
		{ErrCredentialMissing, false},
		{ErrMalformedOutput, false},
		{ErrEmptyResponse, false},
	}
	for _, tc := range cases {
		e := &Error{Type: tc.typ}
		if got := e.IsRetryable(); got != tc.want {
			t.Fatalf("IsRetryable(%s) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestUnwrapExposesUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	err := NewMalformedOutputError("advisory", underlying)
	if !errors.Is(err, underlying) {
		t.Fatal("Unwrap should expose the underlying error")
	}
}
