// Package app assembles a playable session from the command-line config.
package app

import (
	"gridsnake/audio"
	"gridsnake/clock"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/storage"

	"github.com/golang/glog"
)

// OpenStore returns the best-score store selected by cfg
func OpenStore(cfg config.Config) storage.Store {
	if cfg.NoSave {
		return storage.NewMemoryStore()
	}
	return storage.NewFileStore(cfg.DataFile)
}

// NewSession wires storage, fruit placement and the step throttle together
// and routes step outcomes to player.
func NewSession(cfg config.Config, store storage.Store, player audio.Player, tp clock.TimeProvider) *game.Session {
	settings := game.Settings{Sizes: cfg.Sizes(), Palette: entity.DefaultPalette}
	seed := cfg.SeedValue()
	glog.Infof("Board %dx%d cells, step %v, seed %d", settings.Sizes.Cells(), settings.Sizes.Cells(), cfg.Interval(), seed)

	foodMgr := manager.NewFoodManager(seed, manager.NewCollisionManager())
	g := game.NewGame(settings, foodMgr, manager.NewScoreKeeper(store))

	s := game.NewSession(g, cfg.Interval(), tp)
	s.OnStep(func(result game.StepResult, _ game.State) {
		switch result {
		case game.StepAte:
			player.Play(audio.CueEat)
		case game.StepCollided:
			player.Play(audio.CueGameOver)
		}
	})
	return s
}

// PrimaryAction is what the overlay button and Enter do: start a fresh
// game, resume a paused one or replace a finished one.
func PrimaryAction(s *game.Session) {
	st := s.State()
	switch {
	case st.IsGameOver:
		s.Reset()
	case st.IsPlaying:
		// already running
	case s.Started():
		s.TogglePlay()
	default:
		s.Start()
	}
}
