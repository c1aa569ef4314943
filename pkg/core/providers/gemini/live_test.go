package gemini

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"
)

func TestParseLiveMessageSetupComplete(t *testing.T) {
	events := parseLiveMessage([]byte(`{"setupComplete": {}}`))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if _, ok := events[0].(LiveSetupComplete); !ok {
		t.Errorf("got %T, want LiveSetupComplete", events[0])
	}
}

func TestParseLiveMessageTranscripts(t *testing.T) {
	events := parseLiveMessage([]byte(`{
		"serverContent": {
			"inputTranscription": {"text": "mera khet "},
			"outputTranscription": {"text": "aapke khet ke liye"}
		}
	}`))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	in, ok := events[0].(LiveInputTranscript)
	if !ok || in.Text != "mera khet " {
		t.Errorf("events[0] = %#v", events[0])
	}
	out, ok := events[1].(LiveOutputTranscript)
	if !ok || out.Text != "aapke khet ke liye" {
		t.Errorf("events[1] = %#v", events[1])
	}
}

func TestParseLiveMessageAudioDecoded(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	frame := map[string]any{
		"serverContent": map[string]any{
			"modelTurn": map[string]any{
				"parts": []map[string]any{{
					"inlineData": map[string]any{
						"mimeType": "audio/pcm;rate=24000",
						"data":     base64.StdEncoding.EncodeToString(pcm),
					},
				}},
			},
		},
	}
	data, _ := json.Marshal(frame)

	events := parseLiveMessage(data)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	chunk, ok := events[0].(LiveAudioChunk)
	if !ok {
		t.Fatalf("got %T, want LiveAudioChunk", events[0])
	}
	if !bytes.Equal(chunk.Data, pcm) {
		t.Errorf("decoded audio = %v, want %v", chunk.Data, pcm)
	}
}

func TestParseLiveMessageInterruptedBeforeTurnComplete(t *testing.T) {
	events := parseLiveMessage([]byte(`{
		"serverContent": {"interrupted": true, "turnComplete": true}
	}`))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if _, ok := events[0].(LiveInterrupted); !ok {
		t.Errorf("events[0] = %T, want LiveInterrupted first", events[0])
	}
	if _, ok := events[1].(LiveTurnComplete); !ok {
		t.Errorf("events[1] = %T, want LiveTurnComplete", events[1])
	}
}

func TestParseLiveMessageGarbageDropped(t *testing.T) {
	if events := parseLiveMessage([]byte(`not json at all`)); events != nil {
		t.Errorf("got %v, want nil for malformed frame", events)
	}
	if events := parseLiveMessage([]byte(`{}`)); events != nil {
		t.Errorf("got %v, want nil for empty frame", events)
	}
}
