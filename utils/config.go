// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FieldConfig is the logical size of the play area.
type FieldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaddleConfig holds paddle geometry and control parameters.
type PaddleConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Speed        float64 `json:"speed"`        // Units per tick while a direction key is held
	BottomOffset float64 `json:"bottomOffset"` // Distance from the bottom edge to the paddle top
	Color        string  `json:"color"`
	PointerEase  float64 `json:"pointerEase"` // Fraction of the distance to the pointer covered per tick (1 = snap)
}

// BallConfig holds ball geometry and launch parameters.
type BallConfig struct {
	Radius        float64 `json:"radius"`
	InitialDx     float64 `json:"initialDx"`
	InitialDy     float64 `json:"initialDy"`
	MaxDeflection float64 `json:"maxDeflection"` // Horizontal speed added by an edge hit, before renormalisation
	SpawnGap      float64 `json:"spawnGap"`      // Gap between the ball and the paddle on reset
	Color         string  `json:"color"`
}

// BricksConfig describes the brick grid layout and its per-row tiers.
type BricksConfig struct {
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Padding    float64  `json:"padding"`
	OffsetTop  float64  `json:"offsetTop"`
	OffsetLeft float64  `json:"offsetLeft"`
	Colors     []string `json:"colors"` // One per row, top row first
	Points     []int    `json:"points"` // One per row, top row first
}

// ParticlesConfig controls the burst spawned on brick destruction.
type ParticlesConfig struct {
	Count     int     `json:"count"`
	Speed     float64 `json:"speed"`
	Decay     float64 `json:"decay"` // Life lost per tick
	MaxRadius float64 `json:"maxRadius"`
	MinRadius float64 `json:"minRadius"`
}

// TrailConfig controls the ball trail.
type TrailConfig struct {
	MaxLength int     `json:"maxLength"`
	MaxAlpha  float64 `json:"maxAlpha"`
}

// Duration marshals as a Go duration string ("16ms") in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// Config holds all configurable game parameters.
type Config struct {
	Field     FieldConfig     `json:"field"`
	Paddle    PaddleConfig    `json:"paddle"`
	Ball      BallConfig      `json:"ball"`
	Bricks    BricksConfig    `json:"bricks"`
	Particles ParticlesConfig `json:"particles"`
	Trail     TrailConfig     `json:"trail"`

	Lives      int      `json:"lives"`      // Lives at the start of every game
	TickPeriod Duration `json:"tickPeriod"` // Time between simulation ticks for hosts that own a timer
	Seed       uint64   `json:"seed"`       // Random seed, 0 picks one from the clock
	Font       string   `json:"font"`       // Font family hint for surfaces that render text
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       14,
			Speed:        7,
			BottomOffset: 30,
			Color:        "#00d9ff",
			PointerEase:  1,
		},
		Ball: BallConfig{
			Radius:        8,
			InitialDx:     4,
			InitialDy:     -4,
			MaxDeflection: 6,
			SpawnGap:      4,
			Color:         "#ffffff",
		},
		Bricks: BricksConfig{
			Rows:       5,
			Cols:       10,
			Width:      68,
			Height:     20,
			Padding:    6,
			OffsetTop:  50,
			OffsetLeft: 35,
			Colors:     []string{"#ff006e", "#fb5607", "#ffbe0b", "#8338ec", "#3a86ff"},
			Points:     []int{50, 40, 30, 20, 10},
		},
		Particles: ParticlesConfig{
			Count:     8,
			Speed:     6,
			Decay:     0.03,
			MaxRadius: 3,
			MinRadius: 1,
		},
		Trail: TrailConfig{MaxLength: 10, MaxAlpha: 0.3},

		Lives:      3,
		TickPeriod: Duration(16 * time.Millisecond),
		Font:       "Segoe UI, sans-serif",
	}
}

// LoadConfig reads a JSON file on top of DefaultConfig, so a file only needs the
// fields it overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LaunchSpeed is the velocity magnitude the ball keeps after every paddle bounce.
func (c Config) LaunchSpeed() float64 {
	return math.Hypot(c.Ball.InitialDx, c.Ball.InitialDy)
}

// Tick returns TickPeriod as a time.Duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickPeriod)
}

// Validate reports the first inconsistency found in the configuration.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("paddle must have a positive size")
	}
	if c.Paddle.Width > c.Field.Width {
		return invalid("paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	}
	if c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset > c.Field.Height {
		return invalid("paddle bottom offset %v must be within [%v, %v]", c.Paddle.BottomOffset, c.Paddle.Height, c.Field.Height)
	}
	if c.Paddle.PointerEase <= 0 || c.Paddle.PointerEase > 1 {
		return invalid("paddle pointer ease must be in (0, 1], got %v", c.Paddle.PointerEase)
	}
	if c.Ball.Radius <= 0 {
		return invalid("ball radius must be positive")
	}
	if c.LaunchSpeed() == 0 {
		return invalid("ball launch velocity must be non-zero")
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		return invalid("brick grid must have rows and columns")
	}
	if len(c.Bricks.Colors) < c.Bricks.Rows || len(c.Bricks.Points) < c.Bricks.Rows {
		return invalid("brick tiers need %d colors and points, got %d and %d",
			c.Bricks.Rows, len(c.Bricks.Colors), len(c.Bricks.Points))
	}
	for _, points := range c.Bricks.Points[:c.Bricks.Rows] {
		if points < 0 {
			return invalid("brick points must be non-negative, got %d", points)
		}
	}
	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Cols)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	gridBottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
	if gridRight > c.Field.Width || gridBottom > c.Field.Height-c.Paddle.BottomOffset {
		return invalid("brick grid %vx%v does not fit the field", gridRight, gridBottom)
	}
	for _, hex := range append([]string{c.Paddle.Color, c.Ball.Color}, c.Bricks.Colors[:c.Bricks.Rows]...) {
		if _, err := ParseHexColor(hex); err != nil {
			return invalid("%v", err)
		}
	}
	if c.Particles.Count < 0 || c.Particles.Decay <= 0 {
		return invalid("particles need a non-negative count and a positive decay")
	}
	if c.Trail.MaxLength < 0 {
		return invalid("trail length must be non-negative")
	}
	if c.Lives <= 0 {
		return invalid("lives must be positive, got %d", c.Lives)
	}
	if c.TickPeriod <= 0 {
		return invalid("tick period must be positive")
	}
	return nil
}
