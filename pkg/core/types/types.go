// Package types defines the domain records exchanged between the Krishi SDK,
// the Gemini provider, and callers. Field names mirror the wire format of the
// structured-output contract.
package types

// Coordinates is a geographic point used to bias grounding retrieval.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AdvisoryRequest carries one user submission. The core does not persist it.
type AdvisoryRequest struct {
	LandSize       string       `json:"land_size"`
	Location       string       `json:"location"`
	SoilType       string       `json:"soil_type"`
	Irrigation     string       `json:"irrigation"`
	PhoneNumber    string       `json:"phone_number,omitempty"`
	Locale         string       `json:"locale,omitempty"`
	EnableThinking bool         `json:"enable_thinking,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// SourceRef is one citation attached to a grounded response.
type SourceRef struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// GroundedContext is the best-effort market/location research paragraph used
// to ground advisory generation. Produced fresh per request, never cached.
type GroundedContext struct {
	Text    string      `json:"text"`
	Sources []SourceRef `json:"sources,omitempty"`
}

// TranscriptEntry is one committed utterance in a live conversation.
type TranscriptEntry struct {
	Speaker string `json:"speaker"` // "user" or "model"
	Text    string `json:"text"`
}
