package main

import (
	"flag"
	"fmt"
	"os"

	"gridsnake/app"
	"gridsnake/audio"
	"gridsnake/clock"
	"gridsnake/config"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		glog.Flush()
		os.Exit(2)
	}
	glog.Flush()
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(480, 640, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	player := audio.Open(cfg.Mute)
	defer player.Close()

	session := app.NewSession(cfg, app.OpenStore(cfg), player, clock.RealTime{})
	renderer := ui.NewRenderer(session.Settings().Sizes)
	controls := ui.NewControls(session)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		controls.Poll(renderer)
		// Every refresh runs the scheduled callback, the throttle decides whether it steps
		session.Frame()
		renderer.Draw(session.State(), session.Started(), controls.Pressed())
	}
	glog.Infof("Exiting with score %d, best %d", session.State().Score, session.State().BestScore)
	return nil
}
