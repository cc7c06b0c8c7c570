package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	stepDuration = 60 * time.Millisecond
	stepLowHz    = 440.0
	stepHighHz   = 660.0
)

// SoundManager plays short feedback tones for level changes
// Implements tracker.Observer; all methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is active
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayStep plays a rising blip when up, a falling one otherwise
func (sm *SoundManager) PlayStep(up bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	from, to := stepLowHz, stepHighHz
	if !up {
		from, to = to, from
	}

	speaker.Lock()
	sm.mixer.Add(NewStepGenerator(sampleRate, from, to, stepDuration))
	speaker.Unlock()
}

// LevelChanged implements tracker.Observer
func (sm *SoundManager) LevelChanged(_ string, from, to int) {
	sm.PlayStep(to > from)
}

// StepGenerator produces a short enveloped sine sweep and then ends
type StepGenerator struct {
	sr      beep.SampleRate
	fromHz  float64
	toHz    float64
	pos     int
	samples int
	phase   float64
}

// NewStepGenerator creates a sweep from fromHz to toHz lasting d
func NewStepGenerator(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) *StepGenerator {
	return &StepGenerator{
		sr:      sr,
		fromHz:  fromHz,
		toHz:    toHz,
		samples: sr.N(d),
	}
}

func (g *StepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.fromHz + (g.toHz-g.fromHz)*progress

		// Quick attack, linear release
		envelope := math.Min(progress/0.1, 1.0) * (1 - progress)
		sample := 0.2 * envelope * math.Sin(g.phase)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StepGenerator) Err() error {
	return nil
}
