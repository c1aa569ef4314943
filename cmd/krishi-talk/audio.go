package main

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gen2brain/malgo"

	"github.com/krishigpt/krishi-go/pkg/core"
)

const (
	captureRate  = 16000
	playbackRate = 24000
	channels     = 1
)

// initAudio sets up microphone capture at 16 kHz and speaker playback at
// 24 kHz, matching the live session's wire rates.
func initAudio() (*micReader, *speakerWriter, func(), error) {
	malgoConfig := malgo.ContextConfig{}
	malgoConfig.ThreadPriority = malgo.ThreadPriorityRealtime

	malgoCtx, err := malgo.InitContext(nil, malgoConfig, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init audio context: %w", err)
	}

	mic, err := newMicReader(malgoCtx.Context)
	if err != nil {
		malgoCtx.Uninit()
		return nil, nil, nil, err
	}

	otoOpts := &oto.NewContextOptions{
		SampleRate:   playbackRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   4800, // ~100ms at 24kHz mono s16
	}
	otoCtx, ready, err := oto.NewContext(otoOpts)
	if err != nil {
		mic.Close()
		malgoCtx.Uninit()
		return nil, nil, nil, fmt.Errorf("init speaker: %w", err)
	}
	<-ready

	speaker := newSpeakerWriter(otoCtx)

	cleanup := func() {
		mic.Close()
		speaker.Close()
		malgoCtx.Uninit()
	}
	return mic, speaker, cleanup, nil
}

// micReader captures 16 kHz mono s16 PCM from the default microphone.
type micReader struct {
	device *malgo.Device
	buf    []byte
	mu     sync.Mutex
	cond   *sync.Cond
}

func newMicReader(ctx malgo.Context) (*micReader, error) {
	m := &micReader{
		buf: make([]byte, 0, captureRate*2),
	}
	m.cond = sync.NewCond(&m.mu)

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = channels
	deviceConfig.SampleRate = captureRate
	deviceConfig.PeriodSizeInMilliseconds = 20

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, pInputSamples []byte, _ uint32) {
			m.mu.Lock()
			m.buf = append(m.buf, pInputSamples...)
			m.mu.Unlock()
			m.cond.Signal()
		},
	}

	// Device acquisition failures surface as the distinct microphone
	// kind so the caller can render access instructions rather than a
	// generic failure.
	device, err := malgo.InitDevice(ctx, deviceConfig, callbacks)
	if err != nil {
		return nil, core.NewMicPermissionError(fmt.Errorf("init microphone: %w", err))
	}
	m.device = device

	if err := device.Start(); err != nil {
		device.Uninit()
		return nil, core.NewMicPermissionError(fmt.Errorf("start microphone: %w", err))
	}
	return m, nil
}

// Read blocks until captured audio is available.
func (m *micReader) Read(p []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.buf) == 0 {
		m.cond.Wait()
	}

	n := copy(p, m.buf)
	m.buf = m.buf[n:]
	return n
}

func (m *micReader) Close() {
	if m.device != nil {
		_ = m.device.Stop()
		m.device.Uninit()
	}
}

// speakerWriter plays 24 kHz mono s16 PCM and implements the conversation
// AudioSink.
type speakerWriter struct {
	otoCtx  *oto.Context
	player  *oto.Player
	buf     []byte
	mu      sync.Mutex
	cond    *sync.Cond
	playing bool
	closed  bool
}

func newSpeakerWriter(ctx *oto.Context) *speakerWriter {
	s := &speakerWriter{
		otoCtx: ctx,
		buf:    make([]byte, 0, playbackRate*4),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Play queues one audio chunk for playback.
func (s *speakerWriter) Play(pcm []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("speaker is closed")
	}
	s.buf = append(s.buf, pcm...)

	if !s.playing {
		s.playing = true
		s.player = s.otoCtx.NewPlayer(s)
		s.player.Play()
	}

	s.cond.Signal()
	return nil
}

// Stop discards all queued audio. Used on interruption (user barge-in).
func (s *speakerWriter) Stop() {
	s.mu.Lock()
	s.buf = s.buf[:0]
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Read implements io.Reader for oto.Player: playback pulls from the queue,
// draining silence when empty so the device keeps running.
func (s *speakerWriter) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.buf) == 0 && !s.closed {
		s.cond.Wait()
	}

	if s.closed && len(s.buf) == 0 {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

func (s *speakerWriter) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()

	if s.player != nil {
		s.player.Close()
	}
}
