package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundID identifies a sound effect
type SoundID string

const (
	SndPlace  SoundID = "place"
	SndError  SoundID = "error"
	SndRotate SoundID = "rotate"
	SndReset  SoundID = "reset"
	SndSelect SoundID = "select"
)

// AudioManager plays procedurally generated sound effects. All sounds are
// synthesised, nothing is loaded from disk.
type AudioManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	MasterVolume float64
	Muted        bool
	initialized  bool
}

func NewAudioManager() *AudioManager {
	return &AudioManager{
		mixer:        &beep.Mixer{},
		MasterVolume: 0.8,
	}
}

// Init opens the speaker. Without it every Play is a no-op.
func (am *AudioManager) Init() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(am.mixer)
	am.initialized = true
	return nil
}

// Close silences everything still playing
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}
	speaker.Lock()
	am.mixer.Clear()
	speaker.Unlock()
	am.initialized = false
}

// ToggleMute flips mute and returns the new state
func (am *AudioManager) ToggleMute() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.Muted = !am.Muted
	return am.Muted
}

// SetVolume sets master volume, clamped to 0-1
func (am *AudioManager) SetVolume(v float64) {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.MasterVolume = math.Max(0, math.Min(1, v))
}

// PlaySFX queues a sound effect on the mixer
func (am *AudioManager) PlaySFX(id SoundID) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized || am.Muted {
		return
	}
	s := Effect(id, sampleRate, am.MasterVolume)
	if s == nil {
		return
	}
	speaker.Lock()
	am.mixer.Add(s)
	speaker.Unlock()
}

// Effect builds the finite streamer for a sound effect, or nil for an
// unknown id
func Effect(id SoundID, sr beep.SampleRate, volume float64) beep.Streamer {
	switch id {
	case SndPlace:
		return beep.Seq(
			beep.Take(sr.N(70*time.Millisecond), NewChimeGenerator(sr, 660, volume)),
			beep.Take(sr.N(120*time.Millisecond), NewChimeGenerator(sr, 990, volume)),
		)
	case SndError:
		return beep.Take(sr.N(150*time.Millisecond), NewBuzzGenerator(sr, 120, volume))
	case SndRotate:
		return beep.Take(sr.N(90*time.Millisecond), NewSweepGenerator(sr, 300, 600, 90*time.Millisecond, volume))
	case SndReset:
		return beep.Take(sr.N(300*time.Millisecond), NewSweepGenerator(sr, 800, 200, 300*time.Millisecond, volume))
	case SndSelect:
		return beep.Take(sr.N(50*time.Millisecond), NewChimeGenerator(sr, 880, volume))
	}
	return nil
}

// ChimeGenerator is a sine tone with an exponential decay
type ChimeGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func NewChimeGenerator(sr beep.SampleRate, freq, volume float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq, volume: volume}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * g.volume * math.Exp(-t*18) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }

// BuzzGenerator is a low tone with a few harmonics
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func NewBuzzGenerator(sr beep.SampleRate, freq, volume float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq, volume: volume}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5 * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// SweepGenerator glides linearly between two frequencies over a duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	volume   float64
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d), volume: volume}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.25 * g.volume * (1 - p) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }
