package krishi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
	"github.com/krishigpt/krishi-go/pkg/core/types"
)

// ConversationState is the lifecycle state of a Conversation.
type ConversationState string

const (
	StateIdle       ConversationState = "idle"
	StateConnecting ConversationState = "connecting"
	StateActive     ConversationState = "active"
	StateError      ConversationState = "error"
)

// AudioSink receives synthesized audio for playback. Play is called in
// arrival order; Stop must immediately silence everything queued or playing.
type AudioSink interface {
	Play(pcm []byte) error
	Stop()
}

// Conversation is a live voice session bridge. It owns at most one active
// session at a time; Start after Stop begins a fresh session.
type Conversation struct {
	client *Client
	locale Locale
	sink   AudioSink
	clock  *PlaybackClock

	mu        sync.Mutex
	state     ConversationState
	session   *gemini.LiveSession
	history   []types.TranscriptEntry
	inputBuf  strings.Builder
	outputBuf strings.Builder
	lastErr   error
	pumpDone  chan struct{}
}

// NewConversation creates an idle conversation bridge. The sink receives
// 24 kHz mono PCM; a nil sink discards audio (transcript-only use).
func (c *Client) NewConversation(locale Locale, sink AudioSink) *Conversation {
	return &Conversation{
		client: c,
		locale: locale,
		sink:   sink,
		clock:  NewPlaybackClock(),
		state:  StateIdle,
	}
}

// Start opens the live session and begins pumping events. Only valid from
// the idle or error state.
func (conv *Conversation) Start(ctx context.Context) error {
	conv.mu.Lock()
	if conv.state == StateConnecting || conv.state == StateActive {
		conv.mu.Unlock()
		return fmt.Errorf("conversation already started")
	}
	conv.state = StateConnecting
	conv.lastErr = nil
	conv.inputBuf.Reset()
	conv.outputBuf.Reset()
	conv.mu.Unlock()

	language := LanguageName(conv.locale)
	session, err := conv.client.provider.ConnectLive(ctx, &gemini.LiveConfig{
		Model: ModelLive,
		Voice: VoiceFor(conv.locale),
		SystemInstruction: fmt.Sprintf(
			"You are a friendly and helpful agricultural assistant for Indian farmers. "+
				"Your name is Mitra. The user's preferred language is %s. Respond exclusively in %s. "+
				"IMPORTANT: Transcribe the user's speech literally in the language they are speaking. "+
				"Do not transliterate their speech into a different script.",
			language, language),
	})
	if err != nil {
		conv.fail(categorizeLiveError(err))
		return conv.Err()
	}

	conv.mu.Lock()
	conv.session = session
	conv.pumpDone = make(chan struct{})
	conv.mu.Unlock()

	go conv.pump(session)
	return nil
}

// SendAudio forwards one 16 kHz mono PCM microphone frame to the session.
// Frames sent while not active are dropped silently.
func (conv *Conversation) SendAudio(pcm []byte) error {
	conv.mu.Lock()
	session := conv.session
	active := conv.state == StateActive
	conv.mu.Unlock()

	if !active || session == nil {
		return nil
	}
	return session.SendAudio(pcm)
}

// State returns the current lifecycle state.
func (conv *Conversation) State() ConversationState {
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.state
}

// Err returns the categorized error after a transition to the error state.
func (conv *Conversation) Err() error {
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.lastErr
}

// History returns the committed transcript so far.
func (conv *Conversation) History() []types.TranscriptEntry {
	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]types.TranscriptEntry, len(conv.history))
	copy(out, conv.history)
	return out
}

// Stop tears the session down and settles into idle. Idempotent: safe to
// call repeatedly, concurrently, or when Start never ran.
func (conv *Conversation) Stop() {
	conv.mu.Lock()
	session := conv.session
	pumpDone := conv.pumpDone
	conv.session = nil
	if conv.state != StateError {
		conv.state = StateIdle
	}
	conv.mu.Unlock()

	if session != nil {
		_ = session.Close()
	}
	if pumpDone != nil {
		<-pumpDone
	}
	if conv.sink != nil {
		conv.sink.Stop()
	}
	conv.clock.Interrupt()
}

func (conv *Conversation) fail(err error) {
	conv.mu.Lock()
	conv.state = StateError
	if conv.lastErr == nil {
		conv.lastErr = err
	}
	session := conv.session
	conv.session = nil
	conv.mu.Unlock()

	if session != nil {
		_ = session.Close()
	}
	if conv.sink != nil {
		conv.sink.Stop()
	}
	conv.clock.Interrupt()
}

// pump drains session events until the session ends.
func (conv *Conversation) pump(session *gemini.LiveSession) {
	defer func() {
		conv.mu.Lock()
		done := conv.pumpDone
		conv.pumpDone = nil
		conv.mu.Unlock()
		if done != nil {
			close(done)
		}
	}()

	for event := range session.Events() {
		conv.handleEvent(event)
	}

	if err := session.Err(); err != nil {
		conv.fail(categorizeLiveError(err))
		return
	}

	conv.mu.Lock()
	if conv.state == StateActive || conv.state == StateConnecting {
		conv.state = StateIdle
	}
	conv.mu.Unlock()
}

func (conv *Conversation) handleEvent(event gemini.LiveEvent) {
	switch ev := event.(type) {
	case gemini.LiveSetupComplete:
		conv.mu.Lock()
		if conv.state == StateConnecting {
			conv.state = StateActive
		}
		conv.mu.Unlock()

	case gemini.LiveInputTranscript:
		conv.mu.Lock()
		conv.inputBuf.WriteString(ev.Text)
		conv.mu.Unlock()

	case gemini.LiveOutputTranscript:
		conv.mu.Lock()
		conv.outputBuf.WriteString(ev.Text)
		conv.mu.Unlock()

	case gemini.LiveAudioChunk:
		conv.clock.Schedule(PCMDuration(ev.Data, gemini.LiveOutputSampleRate))
		if conv.sink != nil {
			_ = conv.sink.Play(ev.Data)
		}

	case gemini.LiveInterrupted:
		if conv.sink != nil {
			conv.sink.Stop()
		}
		conv.clock.Interrupt()

	case gemini.LiveTurnComplete:
		conv.commitTurn()
	}
}

// commitTurn moves the accumulated transcript buffers into history as one
// user entry and one model entry, then resets both buffers. A turn where
// neither side said anything leaves no trace.
func (conv *Conversation) commitTurn() {
	conv.mu.Lock()
	defer conv.mu.Unlock()

	input := strings.TrimSpace(conv.inputBuf.String())
	output := strings.TrimSpace(conv.outputBuf.String())
	conv.inputBuf.Reset()
	conv.outputBuf.Reset()

	if input == "" && output == "" {
		return
	}
	conv.history = append(conv.history,
		types.TranscriptEntry{Speaker: "user", Text: input},
		types.TranscriptEntry{Speaker: "model", Text: output},
	)
}

// categorizeLiveError sorts session failures into the shared taxonomy so
// the UI can render a targeted message.
func categorizeLiveError(err error) error {
	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		return err
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "credential not configured"):
		return core.NewCredentialMissingError("")
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(lower, "api key"):
		return core.NewCredentialInvalidError(msg)
	case strings.Contains(lower, "microphone") || strings.Contains(lower, "permission denied"):
		return core.NewMicPermissionError(err)
	default:
		return core.NewProviderError("gemini-live", err)
	}
}
