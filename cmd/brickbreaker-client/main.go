// File: cmd/brickbreaker-client/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/terminal"
	"fortio.org/terminal/ansipixels"
	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
	"golang.org/x/net/websocket"
)

func main() {
	os.Exit(Main())
}

// Main connects to a brickbreaker server, plays one session with the
// keyboard and draws the streamed frames as ANSI text.
func Main() int {
	urlFlag := flag.String("url", "ws://localhost:3001/subscribe", "Server websocket `url`")
	originFlag := flag.String("origin", "http://localhost/", "Origin header sent to the server")
	fpsFlag := flag.Float64("fps", 60, "Screen refreshes and key polls per second")
	screenshotFlag := flag.String("screenshot", "", "Save the last drawn frame as a PNG to `path` on exit")
	cli.Main()

	ws, err := websocket.Dial(*urlFlag, "", *originFlag)
	if err != nil {
		return log.FErrf("Error connecting to %s: %v", *urlFlag, err)
	}
	defer ws.Close()

	ap := ansipixels.NewAnsiPixels(*fpsFlag)
	if err := ap.Open(); err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer ap.Restore()
	ap.HideCursor()

	c := newClient(ws)
	canvas := render.NewCanvas(ap.W, ap.H)
	if *screenshotFlag != "" {
		defer saveScreenshot(canvas, *screenshotFlag)
	}
	ap.OnResize = func() error {
		ap.ClearScreen()
		canvas.Resize(ap.W, ap.H)
		c.redraw.Store(true)
		return nil
	}
	_ = ap.OnResize()
	ap.EndSyncMode()
	go c.receive()

	for {
		n, err := ap.ReadOrResizeOrSignalOnce()
		if err != nil {
			if errors.Is(err, terminal.ErrSignal) {
				return 0
			}
			return log.FErrf("Error reading keys: %v", err)
		}
		now := time.Now()
		if n > 0 {
			keys, quit := decodeKeys(ap.Data)
			if quit {
				return 0
			}
			if err := c.press(keys, now); err != nil {
				return log.FErrf("Disconnected: %v", err)
			}
		}
		if err := c.release(now); err != nil {
			return log.FErrf("Disconnected: %v", err)
		}
		if err := c.err(); err != nil {
			return log.FErrf("Disconnected: %v", err)
		}
		if frame := c.latest(); frame != nil {
			ap.StartSyncMode()
			if err := drawFrame(ap, canvas, *frame); err != nil {
				log.Warnf("Skipping frame: %v", err)
			}
			ap.EndSyncMode()
		}
	}
}

func saveScreenshot(canvas *render.Canvas, path string) {
	if err := helpers.SaveImageToFile(canvas.Image(), path); err != nil {
		log.Errf("Error saving screenshot to %s: %v", path, err)
		return
	}
	log.Infof("Saved last frame to %s", path)
}

// inputSender is the part of a websocket connection the client writes to.
type inputSender interface {
	Send(ev game.InputEvent) error
}

type wsSender struct{ conn *websocket.Conn }

func (w wsSender) Send(ev game.InputEvent) error { return websocket.JSON.Send(w.conn, ev) }

// client holds the latest received frame and the held keys.
type client struct {
	conn    *websocket.Conn
	sender  inputSender
	holds   *game.KeyHold
	frame   atomic.Pointer[game.FrameMessage]
	redraw  atomic.Bool
	recvErr atomic.Pointer[error]
	drawn   *game.FrameMessage
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn, sender: wsSender{conn: conn}, holds: game.NewKeyHold()}
}

// receive stores frames as they arrive until the connection fails.
func (c *client) receive() {
	for {
		var frame game.FrameMessage
		if err := websocket.JSON.Receive(c.conn, &frame); err != nil {
			err = fmt.Errorf("receiving frame: %w", err)
			c.recvErr.Store(&err)
			return
		}
		c.frame.Store(&frame)
	}
}

func (c *client) err() error {
	if p := c.recvErr.Load(); p != nil {
		return *p
	}
	return nil
}

// latest returns the newest frame if it was not drawn yet, or after a resize.
func (c *client) latest() *game.FrameMessage {
	frame := c.frame.Load()
	if frame == nil {
		return nil
	}
	if frame == c.drawn && !c.redraw.Swap(false) {
		return nil
	}
	c.drawn = frame
	return frame
}

func (c *client) press(keys []string, now time.Time) error {
	for _, key := range keys {
		if c.holds.Press(key, now) {
			if err := c.sender.Send(game.InputEvent{Type: game.InputKeyDown, Key: key}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *client) release(now time.Time) error {
	for _, key := range c.holds.Expire(now) {
		if err := c.sender.Send(game.InputEvent{Type: game.InputKeyUp, Key: key}); err != nil {
			return err
		}
	}
	return nil
}

// cursorWriter is the part of ansipixels.AnsiPixels frames are drawn with.
type cursorWriter interface {
	MoveCursor(x, y int)
	WriteString(msg string)
}

// drawFrame replays a frame onto canvas and writes it row by row.
func drawFrame(w cursorWriter, canvas *render.Canvas, frame game.FrameMessage) error {
	if err := game.Replay(frame.Commands, canvas); err != nil {
		return fmt.Errorf("frame %d: %w", frame.Frame, err)
	}
	_, rows := canvas.Size()
	for row := 0; row < rows; row++ {
		w.MoveCursor(0, row)
		w.WriteString(canvas.ANSILine(row))
	}
	return nil
}
