package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is an endless sine wave. Volume 0 streams silence.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	phase  float64
}

func NewToneGenerator(sr beep.SampleRate, freq, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: clampVolume(volume),
	}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	step := 2 * math.Pi * g.freq / float64(g.sr)
	for i := range samples {
		sample := g.volume * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.phase += step
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BumpGenerator is a short decaying low tone played when a move is blocked.
type BumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBumpGenerator(sr beep.SampleRate) *BumpGenerator {
	return &BumpGenerator{sr: sr, freq: 110}
}

func (g *BumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*40)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BumpGenerator) Err() error {
	return nil
}
