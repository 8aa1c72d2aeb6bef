// File: audio/player_test.go
package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lguibr/brickbreaker/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneFor(t *testing.T) {
	kinds := []game.EventKind{
		game.EventWall, game.EventPaddle, game.EventBrick,
		game.EventLifeLost, game.EventGameOver, game.EventWin, game.EventStart,
	}
	for _, kind := range kinds {
		tone, ok := ToneFor(kind)
		require.True(t, ok, "no tone for %s", kind)
		assert.Greater(t, tone.Freq, 0.0)
		assert.Greater(t, tone.Duration, time.Duration(0))
		assert.LessOrEqual(t, tone.Volume, 1.0)
	}
	_, ok := ToneFor("unknown")
	assert.False(t, ok)

	brick, _ := ToneFor(game.EventBrick)
	over, _ := ToneFor(game.EventGameOver)
	assert.Greater(t, brick.Freq, over.Freq, "bad news sounds lower")
}

func TestToneStreamerLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	tone := Tone{Freq: 100, Duration: 50 * time.Millisecond, Volume: 0.5}
	s := tone.Streamer(rate)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, 50, total)
}

func TestBlipGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewBlipGenerator(rate, 440, 20*time.Millisecond, 0.3)

	samples := make([][2]float64, rate.N(20*time.Millisecond))
	n, ok := g.Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)
	assert.Zero(t, samples[0][0], "attack starts silent")
	for i := range samples[:n] {
		assert.LessOrEqual(t, samples[i][0], 0.3)
		assert.GreaterOrEqual(t, samples[i][0], -0.3)
		assert.Equal(t, samples[i][0], samples[i][1])
	}
	assert.NoError(t, g.Err())
}

func TestPlayerSilentWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	// Never initialized: Play and Close must not touch the speaker.
	p.Play(game.Event{Kind: game.EventBrick})
	p.Close()
}
