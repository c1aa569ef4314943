package krishi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client at a stub generateContent handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(WithAPIKey("test-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

// decodeWireRequest pulls the prompt and config out of a captured request
// body for assertions.
func decodeWireRequest(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var wire map[string]any
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	return wire
}

func wirePrompt(t *testing.T, wire map[string]any) string {
	t.Helper()
	contents, ok := wire["contents"].([]any)
	if !ok || len(contents) == 0 {
		t.Fatal("request has no contents")
	}
	parts := contents[0].(map[string]any)["parts"].([]any)
	return parts[0].(map[string]any)["text"].(string)
}

// textResponse writes a minimal generateContent response carrying text.
func textResponse(w http.ResponseWriter, text string) {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// minimalAdvisoryJSON is a well-formed advisory carrying every required
// top-level field.
func minimalAdvisoryJSON() string {
	advisory := map[string]any{
		"suggested_crop_for_cultivation": "Grapes",
		"why": map[string]any{
			"soil_suitability": "Well-drained alluvial soil suits grapes.",
			"crop_rotation":    "Perennial vineyard, no rotation needed.",
			"market_demand":    "Strong export demand from the region.",
		},
		"soil_health_assessment": map[string]any{
			"overall_assessment": "Good structure, slightly low organic matter.",
			"improvement_recommendations": []any{
				map[string]any{
					"recommendation": "Add farmyard manure",
					"benefit":        "Raises organic carbon",
					"how_to_steps":   []any{"Apply 10 t/acre", "Incorporate before planting"},
				},
			},
		},
		"time_to_complete_harvest": map[string]any{
			"duration_days_range": "150-180 days",
			"season_window":       "October to March",
		},
		"estimated_total_expense_for_user_land": map[string]any{
			"currency": "INR",
			"amount":   250000.0,
			"breakdown": map[string]any{
				"seeds":                    50000.0,
				"land_preparation":         30000.0,
				"fertilizer_and_nutrients": 40000.0,
				"irrigation_and_water":     25000.0,
				"labor":                    60000.0,
				"pest_and_disease_control": 20000.0,
				"harvesting_and_transport": 15000.0,
				"miscellaneous":            10000.0,
			},
		},
		"irrigation_schedule": map[string]any{
			"frequency": "Every 3 days via drip",
			"method":    "Drip irrigation",
		},
		"profitability_projection": map[string]any{
			"expected_yield": map[string]any{
				"value_range_per_acre": "80-100 quintals",
				"unit":                 "quintals per acre",
			},
			"farm_gate_price": map[string]any{
				"currency":                  "INR",
				"price_per_quintal_assumed": 4000.0,
			},
			"gross_revenue_for_user_land": map[string]any{
				"currency":     "INR",
				"amount_range": "₹16,00,000 - ₹20,00,000",
			},
			"net_profit_for_user_land": map[string]any{
				"currency":     "INR",
				"amount_range": "₹3,50,000 - ₹7,50,000",
			},
			"roi_percentage_range": "28% - 60%",
		},
		"pest_and_disease_management": []any{
			map[string]any{
				"name":       "Downy mildew",
				"type":       "disease",
				"symptoms":   "Yellow oily spots on leaves",
				"management": []any{"Prune for airflow", "Bordeaux spray"},
			},
		},
		"fertilizer_recommendations": []any{
			map[string]any{
				"stage":           "Pre-planting",
				"fertilizer":      "FYM + SSP",
				"dosage_per_acre": "10 t FYM, 100 kg SSP",
			},
		},
		"recommended_marketplaces": []any{
			map[string]any{
				"name":         "Nashik APMC",
				"type":         "mandi",
				"region":       "Nashik",
				"why_suitable": "Largest grape market in the belt",
			},
		},
		"warnings_and_constraints":  []any{"High initial trellis cost"},
		"data_gaps_and_assumptions": []any{"Assumed borewell water availability"},
	}
	data, _ := json.Marshal(advisory)
	return string(data)
}
