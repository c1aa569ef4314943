package krishi

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
)

type fakeSink struct {
	mu      sync.Mutex
	played  [][]byte
	stopped int
}

func (f *fakeSink) Play(pcm []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, pcm)
	return nil
}

func (f *fakeSink) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func newIdleConversation(sink AudioSink) *Conversation {
	return &Conversation{
		locale: LocaleEnglish,
		sink:   sink,
		clock:  NewPlaybackClock(),
		state:  StateConnecting,
	}
}

func TestConversationTurnBuffering(t *testing.T) {
	conv := newIdleConversation(nil)

	conv.handleEvent(gemini.LiveSetupComplete{})
	if conv.State() != StateActive {
		t.Fatalf("state = %q after setup, want active", conv.State())
	}

	// Partial deltas accumulate, then commit as one user and one model
	// entry on turn completion.
	conv.handleEvent(gemini.LiveInputTranscript{Text: "mera khet "})
	conv.handleEvent(gemini.LiveInputTranscript{Text: "paanch acre hai"})
	conv.handleEvent(gemini.LiveOutputTranscript{Text: "aapke khet ke liye "})
	conv.handleEvent(gemini.LiveOutputTranscript{Text: "angoor achha rahega"})
	conv.handleEvent(gemini.LiveTurnComplete{})

	history := conv.History()
	if len(history) != 2 {
		t.Fatalf("got %d history entries, want 2", len(history))
	}
	if history[0].Speaker != "user" || history[0].Text != "mera khet paanch acre hai" {
		t.Errorf("user entry = %+v", history[0])
	}
	if history[1].Speaker != "model" || history[1].Text != "aapke khet ke liye angoor achha rahega" {
		t.Errorf("model entry = %+v", history[1])
	}

	// Buffers reset: a second turn starts clean.
	conv.handleEvent(gemini.LiveInputTranscript{Text: "dhanyavaad"})
	conv.handleEvent(gemini.LiveTurnComplete{})
	history = conv.History()
	if len(history) != 4 {
		t.Fatalf("got %d history entries after second turn, want 4", len(history))
	}
	if history[2].Text != "dhanyavaad" {
		t.Errorf("second user entry = %+v", history[2])
	}
	if history[3].Speaker != "model" || history[3].Text != "" {
		t.Errorf("one-sided turn should still commit an empty model entry, got %+v", history[3])
	}
}

func TestConversationEmptyTurnLeavesNoTrace(t *testing.T) {
	conv := newIdleConversation(nil)
	conv.handleEvent(gemini.LiveSetupComplete{})
	conv.handleEvent(gemini.LiveTurnComplete{})

	if got := len(conv.History()); got != 0 {
		t.Errorf("got %d history entries for a silent turn, want 0", got)
	}
}

func TestConversationAudioAndInterruption(t *testing.T) {
	sink := &fakeSink{}
	conv := newIdleConversation(sink)
	conv.handleEvent(gemini.LiveSetupComplete{})

	chunk := make([]byte, 4800) // 100ms at 24kHz
	conv.handleEvent(gemini.LiveAudioChunk{Data: chunk})
	conv.handleEvent(gemini.LiveAudioChunk{Data: chunk})

	if len(sink.played) != 2 {
		t.Fatalf("sink received %d chunks, want 2", len(sink.played))
	}
	if conv.clock.Backlog() == 0 {
		t.Error("expected scheduled backlog after two chunks")
	}

	conv.handleEvent(gemini.LiveInterrupted{})
	if sink.stopped != 1 {
		t.Errorf("sink stopped %d times, want 1", sink.stopped)
	}
	if conv.clock.Backlog() != 0 {
		t.Error("interruption must reset the playback clock")
	}
}

func TestConversationStopIdempotent(t *testing.T) {
	sink := &fakeSink{}
	c := &Client{}
	conv := c.NewConversation(LocaleEnglish, sink)

	// Never started: Stop is still safe, repeatedly.
	conv.Stop()
	conv.Stop()
	conv.Stop()

	if conv.State() != StateIdle {
		t.Errorf("state = %q, want idle", conv.State())
	}
}

func TestCategorizeLiveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want core.ErrorType
	}{
		{
			name: "typed mic error passes through",
			err:  core.NewMicPermissionError(errors.New("init microphone: device busy")),
			want: core.ErrMicPermission,
		},
		{
			name: "raw microphone failure",
			err:  errors.New("start microphone: device not available"),
			want: core.ErrMicPermission,
		},
		{
			name: "raw permission denial",
			err:  errors.New("open capture stream: permission denied"),
			want: core.ErrMicPermission,
		},
		{
			name: "missing credential contract string",
			err:  fmt.Errorf("dial: %w", core.NewCredentialMissingError("")),
			want: core.ErrCredentialMissing,
		},
		{
			name: "rejected api key",
			err:  errors.New("websocket: bad handshake, API key not valid"),
			want: core.ErrCredentialInvalid,
		},
		{
			name: "anything else is a provider failure",
			err:  errors.New("connection reset by peer"),
			want: core.ErrProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var coreErr *core.Error
			if !errors.As(categorizeLiveError(tt.err), &coreErr) {
				t.Fatal("expected a categorized *core.Error")
			}
			if coreErr.Type != tt.want {
				t.Errorf("type = %q, want %q", coreErr.Type, tt.want)
			}
		})
	}
}

func TestConversationSendAudioWhenInactive(t *testing.T) {
	c := &Client{}
	conv := c.NewConversation(LocaleEnglish, nil)

	// Frames before the session is active are dropped, not an error.
	if err := conv.SendAudio(make([]byte, 640)); err != nil {
		t.Errorf("SendAudio while idle = %v, want nil", err)
	}
}
