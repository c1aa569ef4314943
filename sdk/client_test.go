package krishi

import (
	"errors"
	"strings"
	"testing"
)

func TestNewClientMissingCredential(t *testing.T) {
	t.Setenv("KRISHI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewClient()
	if err == nil {
		t.Fatal("expected error when no key is configured")
	}
	if !IsCredentialMissing(err) {
		t.Errorf("expected credential-missing error, got %v", err)
	}
	var coreErr *Error
	if !errors.As(err, &coreErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.HasPrefix(coreErr.Message, "credential not configured") {
		t.Errorf("message %q must start with the configuration contract string", coreErr.Message)
	}
	if !errors.Is(err, CredentialMissing) {
		t.Error("err should match the CredentialMissing sentinel")
	}
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv("KRISHI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")

	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.apiKey != "from-gemini-env" {
		t.Errorf("apiKey = %q", c.apiKey)
	}
}

func TestNewClientKrishiKeyWins(t *testing.T) {
	t.Setenv("KRISHI_API_KEY", "from-krishi-env")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")

	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.apiKey != "from-krishi-env" {
		t.Errorf("apiKey = %q, want the dedicated variable to win", c.apiKey)
	}
}

func TestNewClientExplicitKey(t *testing.T) {
	t.Setenv("KRISHI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	c, err := NewClient(WithAPIKey("explicit"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.apiKey != "explicit" {
		t.Errorf("apiKey = %q", c.apiKey)
	}
}
