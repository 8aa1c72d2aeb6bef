// File: cmd/brickbreaker-tui/main.go
package main

import (
	"flag"
	"os"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/audio"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
	"github.com/lguibr/brickbreaker/utils"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	configFlag := flag.String("config", "", "JSON `file` overriding the default game settings")
	seedFlag := flag.Uint64("seed", 0, "Random number generator `seed`, default (0) is time based")
	fpsFlag := flag.Float64("fps", 60, "Simulation ticks per second")
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
	if *fpsFlag <= 0 {
		return log.FErrf("Invalid -fps %v", *fpsFlag)
	}

	session, err := game.NewSession(cfg, nil)
	if err != nil {
		return log.FErrf("Error creating game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return log.FErrf("Error creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return log.FErrf("Error initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	player := audio.NewPlayer()
	if *soundFlag {
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Warnf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()
	session.Observe(player.Play)

	run(screen, session, time.Duration(float64(time.Second) / *fpsFlag))
	log.Infof("Final score %d", session.Score())
	return 0
}

func run(screen tcell.Screen, session *game.Session, period time.Duration) {
	canvas := render.NewCanvas(screen.Size())
	keys := game.NewKeyHold()
	fieldWidth := session.Config().Field.Width
	var buttons tcell.ButtonMask

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			var input []game.InputEvent
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev.Key(), ev.Rune()) {
					return
				}
				if key, ok := translateKey(ev.Key(), ev.Rune()); ok {
					input = keyInput(key, keys, time.Now())
				}
			case *tcell.EventMouse:
				col, _ := ev.Position()
				cols, _ := canvas.Size()
				input = mouseInput(col, cols, fieldWidth, ev.Buttons(), buttons)
				buttons = ev.Buttons()
			case *tcell.EventResize:
				canvas.Resize(screen.Size())
				screen.Sync()
			}
			for _, in := range input {
				session.HandleEvent(in)
			}

		case now := <-ticker.C:
			for _, key := range keys.Expire(now) {
				session.HandleEvent(game.InputEvent{Type: game.InputKeyUp, Key: key})
			}
			session.Update()
			session.Render(canvas)
			canvas.Draw(screen)
			screen.Show()
		}
	}
}
