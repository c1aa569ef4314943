package krishi

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
)

// SpeechResult is one synthesized narration payload.
type SpeechResult struct {
	// AudioBase64 is base64-encoded mono PCM at 24 kHz.
	AudioBase64 string
	MIMEType    string
}

// Synthesize turns narration text into speech using the locale's voice.
func (c *Client) Synthesize(ctx context.Context, text string, locale Locale) (*SpeechResult, error) {
	resp, err := c.provider.Generate(ctx, &gemini.GenerateRequest{
		Model:       ModelDefault,
		Prompt:      text,
		AudioOutput: true,
		Voice:       VoiceFor(locale),
	})
	if err != nil {
		return nil, err
	}

	if resp.AudioData == "" {
		return nil, core.NewNoAudioDataError()
	}

	return &SpeechResult{AudioBase64: resp.AudioData, MIMEType: resp.AudioMIME}, nil
}

// DecodePCM decodes a SpeechResult payload into raw PCM bytes.
func (r *SpeechResult) DecodePCM() ([]byte, error) {
	pcm, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("decode audio payload: %w", err)
	}
	return pcm, nil
}
