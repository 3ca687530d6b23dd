// Package main provides the console RPG binary. It loads configuration and
// content, then reads commands from stdin until the player quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cory-johannsen/rpg/internal/app"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty uses defaults and RPG_ environment variables")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, cleanup, err := app.Initialize(app.Options{ConfigPath: *configPath, NoColor: *noColor})
	if err != nil {
		log.Fatalf("initializing game: %v", err)
	}
	defer cleanup()

	if err := game.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		cleanup()
		log.Fatalf("running game: %v", err)
	}
}
