// File: audio/player.go
package audio

import (
	"math"
	"sync"
	"time"

	"fortio.org/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/brickbreaker/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sound effect.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

var tones = map[game.EventKind]Tone{
	game.EventWall:     {Freq: 330, Duration: 30 * time.Millisecond, Volume: 0.15},
	game.EventPaddle:   {Freq: 440, Duration: 50 * time.Millisecond, Volume: 0.25},
	game.EventBrick:    {Freq: 660, Duration: 60 * time.Millisecond, Volume: 0.25},
	game.EventLifeLost: {Freq: 160, Duration: 250 * time.Millisecond, Volume: 0.3},
	game.EventGameOver: {Freq: 110, Duration: 600 * time.Millisecond, Volume: 0.3},
	game.EventWin:      {Freq: 880, Duration: 500 * time.Millisecond, Volume: 0.3},
	game.EventStart:    {Freq: 520, Duration: 80 * time.Millisecond, Volume: 0.2},
}

// ToneFor returns the sound for an event kind.
func ToneFor(kind game.EventKind) (Tone, bool) {
	t, ok := tones[kind]
	return t, ok
}

// Player plays event sounds through the system speaker. A player whose
// speaker could not be opened stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the tone for ev, if there is one.
func (p *Player) Play(ev game.Event) {
	tone, ok := ToneFor(ev.Kind)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(tone.Streamer(sampleRate))
	speaker.Unlock()
	log.LogVf("audio: %s at %vHz", ev.Kind, tone.Freq)
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Streamer returns the tone as a finite beep.Streamer.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(t.Duration), NewBlipGenerator(sr, t.Freq, t.Duration, t.Volume))
}

// BlipGenerator is a sine wave with a short attack and a linear release.
type BlipGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	total  int
	pos    int
}

func NewBlipGenerator(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, volume: volume, total: max(sr.N(d), 1)}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.total)
		if g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}
		sample := g.volume * math.Max(envelope, 0) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
