// File: main.go
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/server"
	"github.com/lguibr/brickbreaker/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(Main())
}

func Main() int {
	addrFlag := flag.String("addr", ":3001", "`address` to listen on")
	configFlag := flag.String("config", "", "JSON `file` overriding the default game settings")
	maxSessionsFlag := flag.Int("max-sessions", game.DefaultMaxSessions, "Maximum concurrent game sessions")
	cli.Main()

	cfg := utils.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = utils.LoadConfig(*configFlag); err != nil {
			return log.FErrf("Error loading config: %v", err)
		}
	}

	engine := bollywood.NewEngine()
	managerPID := engine.Spawn(bollywood.NewProps(game.NewSessionManagerProducer(engine, game.SessionManagerArgs{
		Config:      cfg,
		MaxSessions: *maxSessionsFlag,
	})))
	if managerPID == nil {
		return log.FErrf("Failed to spawn session manager")
	}

	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           server.New(engine, managerPID).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", *addrFlag)
		errCh <- httpServer.ListenAndServe()
	}()

	exit := 0
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Errf("HTTP server failed: %v", err)
			exit = 1
		}
	case <-ctx.Done():
		log.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warnf("HTTP shutdown: %v", err)
		}
	}
	engine.Shutdown(shutdownTimeout)
	return exit
}
