// File: game/paddle_test.go
package game

import (
	"math/rand/v2"
	"testing"

	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
)

func TestPaddle_Reset(t *testing.T) {
	cfg := utils.DefaultConfig()
	p := NewPaddle(cfg)
	p.X = 17
	p.Reset()
	assert.Equal(t, 340.0, p.X)
	assert.Equal(t, 570.0, p.Y)
}

func TestPaddle_Update(t *testing.T) {
	cfg := utils.DefaultConfig()

	testCases := []struct {
		name      string
		startX    float64
		keys      []string
		pointerX  float64
		pointer   bool
		ease      float64
		expectedX float64
	}{
		{"Idle", 100, nil, 0, false, 1, 100},
		{"ArrowLeft", 100, []string{"ArrowLeft"}, 0, false, 1, 93},
		{"LetterA", 100, []string{"a"}, 0, false, 1, 93},
		{"ArrowRight", 100, []string{"ArrowRight"}, 0, false, 1, 107},
		{"LetterD", 100, []string{"d"}, 0, false, 1, 107},
		{"BothCancel", 100, []string{"ArrowLeft", "d"}, 0, false, 1, 100},
		{"UnknownKey", 100, []string{"x"}, 0, false, 1, 100},
		{"ClampLeft", 3, []string{"ArrowLeft"}, 0, false, 1, 0},
		{"ClampRight", 678, []string{"ArrowRight"}, 0, false, 1, 680},
		{"PointerSnap", 100, nil, 400, true, 1, 340},
		{"PointerOverridesKeys", 100, []string{"ArrowRight"}, 400, true, 1, 340},
		{"PointerClampRight", 100, nil, 790, true, 1, 680},
		{"PointerClampLeft", 100, nil, 10, true, 1, 0},
		{"PointerEased", 100, nil, 460, true, 0.5, 250},
		{"PointerInactive", 100, nil, 400, false, 1, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.Paddle.PointerEase = tc.ease
			p := NewPaddle(c)
			p.X = tc.startX
			in := NewInput(c.Field.Width)
			for _, k := range tc.keys {
				in.KeyDown(k)
			}
			if tc.pointer {
				in.PointerMove(tc.pointerX)
			}
			p.Update(in)
			assert.InDelta(t, tc.expectedX, p.X, 1e-9)
		})
	}
}

func TestPaddle_StaysInField(t *testing.T) {
	cfg := utils.DefaultConfig()
	p := NewPaddle(cfg)
	in := NewInput(cfg.Field.Width)
	rng := rand.New(rand.NewPCG(1, 2))
	keys := []string{"ArrowLeft", "ArrowRight", "a", "d"}

	for frame := 0; frame < 5000; frame++ {
		switch rng.IntN(6) {
		case 0:
			in.KeyDown(keys[rng.IntN(len(keys))])
		case 1:
			in.KeyUp(keys[rng.IntN(len(keys))])
		case 2:
			in.PointerMove(rng.Float64()*1200 - 200)
		case 3:
			in.PointerLeave()
		}
		p.Update(in)
		if p.X < 0 || p.X > cfg.Field.Width-cfg.Paddle.Width {
			t.Fatalf("frame %d: paddle x %v outside [0, %v]", frame, p.X, cfg.Field.Width-cfg.Paddle.Width)
		}
	}
}
