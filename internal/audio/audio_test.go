package audio

import (
	"io"
	"math"
	"testing"

	"chunkwalk/internal/config"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneGenerator_Silent(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(48000), 400, 0)
	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 512, n)
	for i := range samples {
		assert.Zero(t, samples[i][0])
		assert.Zero(t, samples[i][1])
	}
	assert.NoError(t, g.Err())
}

func TestToneGenerator_Range(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(48000), 400, 3) // clamped to 1
	samples := make([][2]float64, 4800)
	g.Stream(samples)

	peak := 0.0
	for _, s := range samples {
		assert.Equal(t, s[0], s[1])
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.99)
}

func TestBumpGenerator_Decays(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := beep.Take(sr.N(bumpDuration), NewBumpGenerator(sr))
	buf := make([][2]float64, 1024)
	total := 0
	last := 0.0
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		total += n
		last = math.Abs(buf[n-1][0])
	}
	assert.Equal(t, sr.N(bumpDuration), total)
	assert.Less(t, last, 0.05)
}

func TestOutput_Disabled(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	o := NewOutput(config.AudioConfig{Enabled: false, SampleRate: 48000}, logger)
	require.NoError(t, o.Start())
	assert.False(t, o.Enabled())
	o.Bump()
	assert.NoError(t, o.Close())
}
