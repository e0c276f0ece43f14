package main

import (
	"testing"

	"gridsnake/config"
)

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = 0

	// Validation happens before any window is opened
	if err := run(cfg); err == nil {
		t.Error("Expected invalid config to be rejected")
	}
}
