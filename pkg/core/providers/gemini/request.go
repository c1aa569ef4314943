package gemini

// Wire request types. Gemini uses camelCase JSON field names.

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	Tools             []geminiTool      `json:"tools,omitempty"`
	ToolConfig        *geminiToolConfig `json:"toolConfig,omitempty"`
	GenerationConfig  *geminiGenConfig  `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inlineData,omitempty"`
}

type geminiBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64 encoded
}

type geminiTool struct {
	GoogleSearch *geminiGoogleSearch `json:"googleSearch,omitempty"`
	GoogleMaps   *geminiGoogleMaps   `json:"googleMaps,omitempty"`
}

type geminiGoogleSearch struct{}

type geminiGoogleMaps struct{}

type geminiToolConfig struct {
	RetrievalConfig *geminiRetrievalConfig `json:"retrievalConfig,omitempty"`
}

// geminiRetrievalConfig biases search-augmented retrieval toward a location.
type geminiRetrievalConfig struct {
	LatLng *geminiLatLng `json:"latLng,omitempty"`
}

type geminiLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geminiGenConfig struct {
	Temperature        *float64              `json:"temperature,omitempty"`
	ResponseMIMEType   string                `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema               `json:"responseSchema,omitempty"`
	ResponseModalities []string              `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig   `json:"speechConfig,omitempty"`
	ThinkingConfig     *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig *geminiVoiceConfig `json:"voiceConfig,omitempty"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig *geminiPrebuiltVoice `json:"prebuiltVoiceConfig,omitempty"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiThinkingConfig struct {
	ThinkingBudget *int32 `json:"thinkingBudget,omitempty"`
}

// buildRequest translates a GenerateRequest into the Gemini wire format.
func (p *Provider) buildRequest(req *GenerateRequest) *geminiRequest {
	wire := &geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Prompt}},
		}},
	}

	if req.System != "" {
		wire.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}

	if req.WebSearch {
		wire.Tools = append(wire.Tools, geminiTool{GoogleSearch: &geminiGoogleSearch{}})
	}
	if req.MapsSearch {
		wire.Tools = append(wire.Tools, geminiTool{GoogleMaps: &geminiGoogleMaps{}})
	}
	if req.LatLng != nil {
		wire.ToolConfig = &geminiToolConfig{
			RetrievalConfig: &geminiRetrievalConfig{
				LatLng: &geminiLatLng{
					Latitude:  req.LatLng.Latitude,
					Longitude: req.LatLng.Longitude,
				},
			},
		}
	}

	config := &geminiGenConfig{Temperature: req.Temperature}
	if req.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.ResponseSchema
	}
	if req.AudioOutput {
		config.ResponseModalities = []string{"AUDIO"}
		if req.Voice != "" {
			config.SpeechConfig = &geminiSpeechConfig{
				VoiceConfig: &geminiVoiceConfig{
					PrebuiltVoiceConfig: &geminiPrebuiltVoice{VoiceName: req.Voice},
				},
			}
		}
	}
	if req.ThinkingBudget != nil {
		config.ThinkingConfig = &geminiThinkingConfig{ThinkingBudget: req.ThinkingBudget}
	}
	wire.GenerationConfig = config

	return wire
}
