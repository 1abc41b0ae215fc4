// Package audio plays the game's sound through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"chunkwalk/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const bumpDuration = 80 * time.Millisecond

// Output owns the speaker for the lifetime of the game. A disabled Output accepts every
// call and does nothing.
type Output struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sr          beep.SampleRate
	mixer       *beep.Mixer
	tone        *beep.Ctrl
	logger      logrus.FieldLogger
	initialized bool
}

func NewOutput(cfg config.AudioConfig, logger logrus.FieldLogger) *Output {
	return &Output{
		cfg:    cfg,
		sr:     beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Start opens the speaker and begins the background tone.
func (o *Output) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.cfg.Enabled || o.initialized {
		return nil
	}
	if err := speaker.Init(o.sr, o.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	o.tone = &beep.Ctrl{Streamer: NewToneGenerator(o.sr, o.cfg.ToneHz, o.cfg.Volume)}
	o.mixer.Add(o.tone)
	speaker.Play(o.mixer)
	o.initialized = true

	o.logger.WithFields(logrus.Fields{
		"sample_rate": o.cfg.SampleRate,
		"tone_hz":     o.cfg.ToneHz,
		"volume":      o.cfg.Volume,
	}).Info("audio started")
	return nil
}

// Bump plays the blocked-move sound.
func (o *Output) Bump() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Add(beep.Take(o.sr.N(bumpDuration), NewBumpGenerator(o.sr)))
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return nil
	}
	speaker.Lock()
	o.tone.Paused = true
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	o.initialized = false
	return nil
}

func (o *Output) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}
