package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// LiveInputSampleRate is the PCM rate of outbound microphone frames.
	LiveInputSampleRate = 16000

	// LiveOutputSampleRate is the PCM rate of inbound synthesized audio.
	LiveOutputSampleRate = 24000

	liveConnectTimeout = 15 * time.Second
)

// LiveConfig configures a bidirectional audio session.
type LiveConfig struct {
	Model             string
	SystemInstruction string
	Voice             string
}

// LiveEvent is one inbound event from a live session.
type LiveEvent interface {
	liveEventType() string
}

// LiveSetupComplete signals the server accepted the session setup.
type LiveSetupComplete struct{}

func (LiveSetupComplete) liveEventType() string { return "setup_complete" }

// LiveInputTranscript carries a partial transcript delta of user speech.
type LiveInputTranscript struct{ Text string }

func (LiveInputTranscript) liveEventType() string { return "input_transcript" }

// LiveOutputTranscript carries a partial transcript delta of model speech.
type LiveOutputTranscript struct{ Text string }

func (LiveOutputTranscript) liveEventType() string { return "output_transcript" }

// LiveAudioChunk carries decoded 24 kHz mono PCM from the model turn.
type LiveAudioChunk struct{ Data []byte }

func (LiveAudioChunk) liveEventType() string { return "audio_chunk" }

// LiveTurnComplete marks the end of one user/model exchange.
type LiveTurnComplete struct{}

func (LiveTurnComplete) liveEventType() string { return "turn_complete" }

// LiveInterrupted signals user barge-in: playback must stop immediately.
type LiveInterrupted struct{}

func (LiveInterrupted) liveEventType() string { return "interrupted" }

// LiveSession is one open BidiGenerateContent websocket session.
type LiveSession struct {
	conn *websocket.Conn

	events  chan LiveEvent
	done    chan struct{}
	closing chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    atomic.Bool

	errMu sync.Mutex
	err   error
}

// ConnectLive opens a live session, sends the setup message and starts the
// read loop. The caller owns the session and must Close it.
func (p *Provider) ConnectLive(ctx context.Context, cfg *LiveConfig) (*LiveSession, error) {
	dialer := websocket.Dialer{HandshakeTimeout: liveConnectTimeout}
	conn, _, err := dialer.DialContext(ctx, p.liveURL+"?key="+p.apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("dial live endpoint: %w", err)
	}

	s := &LiveSession{
		conn:    conn,
		events:  make(chan LiveEvent, 64),
		done:    make(chan struct{}),
		closing: make(chan struct{}),
	}

	setup := liveClientMessage{
		Setup: &liveSetup{
			Model: "models/" + cfg.Model,
			GenerationConfig: &geminiGenConfig{
				ResponseModalities: []string{"AUDIO"},
				SpeechConfig: &geminiSpeechConfig{
					VoiceConfig: &geminiVoiceConfig{
						PrebuiltVoiceConfig: &geminiPrebuiltVoice{VoiceName: cfg.Voice},
					},
				},
			},
			InputAudioTranscription:  &struct{}{},
			OutputAudioTranscription: &struct{}{},
		},
	}
	if cfg.SystemInstruction != "" {
		setup.Setup.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: cfg.SystemInstruction}},
		}
	}
	if err := s.sendJSON(setup); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send setup: %w", err)
	}

	go s.readLoop()
	return s, nil
}

// Events yields inbound session events. The channel closes on teardown.
func (s *LiveSession) Events() <-chan LiveEvent {
	if s == nil {
		return nil
	}
	return s.events
}

// SendAudio pushes one 16 kHz mono PCM microphone frame.
func (s *LiveSession) SendAudio(pcm []byte) error {
	if s == nil {
		return fmt.Errorf("session must not be nil")
	}
	msg := liveClientMessage{
		RealtimeInput: &liveRealtimeInput{
			Audio: &geminiBlob{
				MIMEType: fmt.Sprintf("audio/pcm;rate=%d", LiveInputSampleRate),
				Data:     base64.StdEncoding.EncodeToString(pcm),
			},
		},
	}
	return s.sendJSON(msg)
}

func (s *LiveSession) sendJSON(v any) error {
	if s.closed.Load() {
		return fmt.Errorf("live session is closed")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// Close tears the session down. Idempotent and safe to call concurrently
// with an in-flight send.
func (s *LiveSession) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.closing)
		s.writeMu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(2*time.Second))
		s.writeMu.Unlock()
		_ = s.conn.Close()
	})
	<-s.done
	return nil
}

// Err returns the terminal session error, if any, once the session ends.
func (s *LiveSession) Err() error {
	if s == nil {
		return nil
	}
	<-s.done
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *LiveSession) setErr(err error) {
	if err == nil {
		return
	}
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *LiveSession) readLoop() {
	defer close(s.done)
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || s.closed.Load() {
				return
			}
			s.setErr(err)
			return
		}

		for _, event := range parseLiveMessage(data) {
			select {
			case s.events <- event:
			case <-s.closing:
				return
			}
		}
	}
}

// Wire types for the live protocol.

type liveClientMessage struct {
	Setup         *liveSetup         `json:"setup,omitempty"`
	RealtimeInput *liveRealtimeInput `json:"realtimeInput,omitempty"`
}

type liveSetup struct {
	Model                    string           `json:"model"`
	GenerationConfig         *geminiGenConfig `json:"generationConfig,omitempty"`
	SystemInstruction        *geminiContent   `json:"systemInstruction,omitempty"`
	InputAudioTranscription  *struct{}        `json:"inputAudioTranscription,omitempty"`
	OutputAudioTranscription *struct{}        `json:"outputAudioTranscription,omitempty"`
}

type liveRealtimeInput struct {
	Audio *geminiBlob `json:"audio,omitempty"`
}

type liveServerMessage struct {
	SetupComplete *struct{}          `json:"setupComplete,omitempty"`
	ServerContent *liveServerContent `json:"serverContent,omitempty"`
}

type liveServerContent struct {
	ModelTurn           *geminiContent     `json:"modelTurn,omitempty"`
	TurnComplete        bool               `json:"turnComplete,omitempty"`
	Interrupted         bool               `json:"interrupted,omitempty"`
	InputTranscription  *liveTranscription `json:"inputTranscription,omitempty"`
	OutputTranscription *liveTranscription `json:"outputTranscription,omitempty"`
}

type liveTranscription struct {
	Text string `json:"text"`
}

// parseLiveMessage decodes one server frame into zero or more events.
// Unparseable frames are dropped rather than killing the session.
func parseLiveMessage(data []byte) []LiveEvent {
	var msg liveServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil
	}

	var events []LiveEvent
	if msg.SetupComplete != nil {
		events = append(events, LiveSetupComplete{})
	}

	sc := msg.ServerContent
	if sc == nil {
		return events
	}

	if sc.InputTranscription != nil && sc.InputTranscription.Text != "" {
		events = append(events, LiveInputTranscript{Text: sc.InputTranscription.Text})
	}
	if sc.OutputTranscription != nil && sc.OutputTranscription.Text != "" {
		events = append(events, LiveOutputTranscript{Text: sc.OutputTranscription.Text})
	}

	if sc.ModelTurn != nil {
		for _, part := range sc.ModelTurn.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			pcm, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				continue
			}
			events = append(events, LiveAudioChunk{Data: pcm})
		}
	}

	// Interruption takes effect before the turn boundary so playback stops
	// ahead of any history commit.
	if sc.Interrupted {
		events = append(events, LiveInterrupted{})
	}
	if sc.TurnComplete {
		events = append(events, LiveTurnComplete{})
	}

	return events
}
