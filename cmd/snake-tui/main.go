// Command snake-tui plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gridsnake/app"
	"gridsnake/audio"
	"gridsnake/clock"
	"gridsnake/config"
	"gridsnake/tui"

	"github.com/golang/glog"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	refresh := flag.Duration("refresh", tui.DefaultRefresh, "Screen refresh interval")
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg, *refresh); err != nil {
		fmt.Fprintf(os.Stderr, "snake-tui: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg config.Config, refresh time.Duration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player := audio.Open(cfg.Mute)
	defer player.Close()

	screen, err := tui.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	session := app.NewSession(cfg, app.OpenStore(cfg), player, clock.RealTime{})
	return tui.NewLoop(screen, session, refresh).Run(ctx)
}
