package krishi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/krishigpt/krishi-go/pkg/core/types"
)

func TestRetrieveMarketContextSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		wire := decodeWireRequest(t, r)

		tools, _ := wire["tools"].([]any)
		if len(tools) != 2 {
			t.Errorf("got %d tools, want googleSearch and googleMaps", len(tools))
		}
		if _, ok := wire["toolConfig"]; !ok {
			t.Error("coordinates given but no toolConfig geo bias")
		}

		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": "Onion prices are up at Lasalgaon."}},
					},
					"groundingMetadata": map[string]any{
						"groundingChunks": []any{
							map[string]any{"web": map[string]any{
								"uri": "https://agmarknet.example", "title": "Agmarknet",
							}},
						},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	ctx := c.RetrieveMarketContext(context.Background(), "Nashik",
		&types.Coordinates{Latitude: 19.99, Longitude: 73.78}, "")

	if ctx.Text != "Onion prices are up at Lasalgaon." {
		t.Errorf("text = %q", ctx.Text)
	}
	if len(ctx.Sources) != 1 || ctx.Sources[0].Title != "Agmarknet" {
		t.Errorf("sources = %+v", ctx.Sources)
	}
}

func TestRetrieveMarketContextAbsorbsFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"code": 503, "message": "down", "status": "UNAVAILABLE"}}`))
	})

	ctx := c.RetrieveMarketContext(context.Background(), "Nashik", nil, "")

	if !strings.Contains(ctx.Text, "No specific local data found") {
		t.Errorf("degraded text = %q, want the neutral fallback", ctx.Text)
	}
	if ctx.Sources != nil {
		t.Errorf("degraded sources = %+v, want nil", ctx.Sources)
	}
}

func TestRetrieveMarketContextEmptyTextDegrades(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		textResponse(w, "")
	})

	ctx := c.RetrieveMarketContext(context.Background(), "Nashik", nil, "")
	if !strings.Contains(ctx.Text, "No specific local data found") {
		t.Errorf("text = %q, want fallback on empty reply", ctx.Text)
	}
}

func TestBuildGroundingPromptInterest(t *testing.T) {
	prompt := buildGroundingPrompt("Nashik", "grapes, onions")
	if !strings.Contains(prompt, "Nashik") {
		t.Error("prompt missing location")
	}
	if !strings.Contains(prompt, "grapes, onions") {
		t.Error("prompt missing crops of interest")
	}
}
