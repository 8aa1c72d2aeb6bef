// File: cmd/brickbreaker-desktop/main.go
package main

import (
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lguibr/brickbreaker/audio"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeySpace:      " ",
	ebiten.KeyEnter:      "Enter",
}

// pointerTracker turns polled cursor positions into enter, move and leave events.
type pointerTracker struct {
	inside bool
	lastX  int
}

func (p *pointerTracker) Update(x, y, width, height int) []game.InputEvent {
	inside := x >= 0 && y >= 0 && x < width && y < height
	var out []game.InputEvent
	switch {
	case inside && !p.inside:
		out = append(out,
			game.InputEvent{Type: game.InputPointerEnter},
			game.InputEvent{Type: game.InputPointerMove, X: float64(x)})
	case inside && x != p.lastX:
		out = append(out, game.InputEvent{Type: game.InputPointerMove, X: float64(x)})
	case !inside && p.inside:
		out = append(out, game.InputEvent{Type: game.InputPointerLeave})
	}
	p.inside = inside
	p.lastX = x
	return out
}

// Game adapts a Session to ebiten's update and draw loop.
type Game struct {
	session *game.Session
	surface *ebitenSurface
	pointer pointerTracker
	width   int
	height  int
}

func NewGame(session *game.Session) *Game {
	cfg := session.Config()
	return &Game{
		session: session,
		surface: newEbitenSurface(),
		width:   safecast.MustRound[int](cfg.Field.Width),
		height:  safecast.MustRound[int](cfg.Field.Height),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, name := range keyNames {
		if inpututil.IsKeyJustPressed(key) {
			g.session.HandleEvent(game.InputEvent{Type: game.InputKeyDown, Key: name})
		}
		if inpututil.IsKeyJustReleased(key) {
			g.session.HandleEvent(game.InputEvent{Type: game.InputKeyUp, Key: name})
		}
	}
	mx, my := ebiten.CursorPosition()
	for _, ev := range g.pointer.Update(mx, my, g.width, g.height) {
		g.session.HandleEvent(ev)
	}
	if g.pointer.inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.HandleEvent(game.InputEvent{Type: game.InputClick})
	}
	g.session.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.session.Render(g.surface)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	os.Exit(Main())
}

func Main() int {
	configFlag := flag.String("config", "", "JSON `file` overriding the default game settings")
	seedFlag := flag.Uint64("seed", 0, "Random number generator `seed`, default (0) is time based")
	soundFlag := flag.Bool("sound", true, "Play sound effects")
	cli.Main()

	cfg := utils.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = utils.LoadConfig(*configFlag); err != nil {
			return log.FErrf("Error loading config: %v", err)
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	session, err := game.NewSession(cfg, nil)
	if err != nil {
		return log.FErrf("Error creating game: %v", err)
	}

	player := audio.NewPlayer()
	if *soundFlag {
		if err := player.Initialize(); err != nil {
			log.Warnf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()
	session.Observe(player.Play)

	g := NewGame(session)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Brick Breaker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(safecast.MustRound[int](float64(1e9) / float64(cfg.Tick())))
	if err := ebiten.RunGame(g); err != nil {
		return log.FErrf("Game ended with error: %v", err)
	}
	log.Infof("Final score %d", session.Score())
	return 0
}
