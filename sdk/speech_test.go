package krishi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/krishigpt/krishi-go/pkg/core"
)

func audioResponse(w http.ResponseWriter, pcm []byte) {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{
						"inlineData": map[string]any{
							"mimeType": "audio/L16;codec=pcm;rate=24000",
							"data":     base64.StdEncoding.EncodeToString(pcm),
						},
					}},
				},
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func TestSynthesize(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}
	var voice string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		wire := decodeWireRequest(t, r)
		config := wire["generationConfig"].(map[string]any)

		modalities, _ := config["responseModalities"].([]any)
		if len(modalities) != 1 || modalities[0] != "AUDIO" {
			t.Errorf("responseModalities = %v", modalities)
		}
		speech := config["speechConfig"].(map[string]any)
		voice = speech["voiceConfig"].(map[string]any)["prebuiltVoiceConfig"].(map[string]any)["voiceName"].(string)

		audioResponse(w, pcm)
	})

	result, err := c.Synthesize(context.Background(), "नमस्ते किसान मित्र", LocaleHindi)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if voice != VoiceFor(LocaleHindi) {
		t.Errorf("voice = %q, want the Hindi voice", voice)
	}

	decoded, err := result.DecodePCM()
	if err != nil {
		t.Fatalf("DecodePCM: %v", err)
	}
	if !bytes.Equal(decoded, pcm) {
		t.Errorf("decoded = %v, want %v", decoded, pcm)
	}
}

func TestSynthesizeNoAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		textResponse(w, "sorry, text only")
	})

	_, err := c.Synthesize(context.Background(), "hello", LocaleEnglish)
	var coreErr *core.Error
	if !errors.As(err, &coreErr) || coreErr.Type != core.ErrNoAudioData {
		t.Fatalf("got %v, want no-audio-data error", err)
	}
}
