package krishi

import (
	"sync"
	"time"
)

// PlaybackClock schedules inbound audio chunks for gapless, ordered playback.
// Each chunk starts at max(nextStart, now) and advances the clock by its own
// duration, so chunks never overlap and backlog is measurable.
type PlaybackClock struct {
	mu        sync.Mutex
	nextStart time.Time
	now       func() time.Time
}

// NewPlaybackClock creates a clock using wall time.
func NewPlaybackClock() *PlaybackClock {
	return &PlaybackClock{now: time.Now}
}

// newPlaybackClockAt creates a clock with an injected time source for tests.
func newPlaybackClockAt(now func() time.Time) *PlaybackClock {
	return &PlaybackClock{now: now}
}

// Schedule returns the start time for a chunk of the given duration and
// advances the clock past it.
func (c *PlaybackClock) Schedule(duration time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.now()
	if c.nextStart.After(start) {
		start = c.nextStart
	}
	c.nextStart = start.Add(duration)
	return start
}

// Backlog reports how far ahead of now the clock is scheduled.
func (c *PlaybackClock) Backlog() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	backlog := c.nextStart.Sub(c.now())
	if backlog < 0 {
		return 0
	}
	return backlog
}

// Interrupt resets the clock on user barge-in. The caller is responsible for
// stopping any sources already playing.
func (c *PlaybackClock) Interrupt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextStart = time.Time{}
}

// PCMDuration computes the play duration of raw 16-bit mono PCM at the given
// sample rate.
func PCMDuration(pcm []byte, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	samples := len(pcm) / 2
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}
