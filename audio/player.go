package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/solhart/guideplay/feedback"
)

const (
	toneDuration = 300 * time.Millisecond
	toneAttack   = 10 * time.Millisecond
	toneRelease  = 250 * time.Millisecond
)

// Player synthesizes feedback tones through the system speaker. A failed
// speaker init leaves the player silent; playback is never a correctness
// dependency.
type Player struct {
	mu          sync.Mutex
	initialized bool
	volume      float64
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64) *Player {
	if volume <= 0 {
		volume = 0.3
	}
	return &Player{volume: volume}
}

// Init sets up the speaker. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
	}
}

// Play fires one synthesized effect. Silent when the speaker is not
// initialized or the sound is unknown.
func (p *Player) Play(sound feedback.Sound) {
	p.mu.Lock()
	initialized := p.initialized
	volume := p.volume
	p.mu.Unlock()
	if !initialized {
		return
	}

	var tone beep.Streamer
	switch sound {
	case feedback.SoundCorrect:
		tone = p.tone(800, WaveSine)
	case feedback.SoundIncorrect:
		tone = p.tone(300, WaveSaw)
	case feedback.SoundLevelUp:
		tone = p.tone(600, WaveSine)
	default:
		return
	}

	speaker.Play(&effects.Gain{
		Streamer: tone,
		Gain:     volume - 1, // effects.Gain scales by 1+Gain
	})
}

func (p *Player) tone(freq float64, wave WaveType) beep.Streamer {
	osc := newOscillator(freq, toneDuration, wave, sampleRate)
	return withEnvelope(osc, toneDuration, toneAttack, toneRelease, sampleRate)
}
