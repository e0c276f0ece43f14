// Package config holds the command-line settings shared by the front ends.
package config

import (
	"flag"
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

type Config struct {
	Speed     int // step interval in milliseconds
	BoardSize int
	CellSize  int
	DataFile  string
	NoSave    bool
	Mute      bool
	Seed      uint64
}

// Default returns the stock 30x30 board stepping every 100ms
func Default() Config {
	return Config{
		Speed:     100,
		BoardSize: types.DefaultBoardSize,
		CellSize:  types.DefaultCellSize,
		DataFile:  "data/storage.json",
	}
}

// RegisterFlags binds the fields to fs, using the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "Step interval in milliseconds (lower = faster)")
	fs.IntVar(&c.BoardSize, "board", c.BoardSize, "Board edge length in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell edge length in pixels")
	fs.StringVar(&c.DataFile, "data", c.DataFile, "File holding the best score")
	fs.BoolVar(&c.NoSave, "no-save", c.NoSave, "Keep the best score in memory only")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Fruit placement seed (0 = time based)")
}

// Validate rejects boards too small to hold the starting snake
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.BoardSize < 10*c.CellSize {
		return errors.Errorf("board of %dpx holds fewer than 10 cells of %dpx", c.BoardSize, c.CellSize)
	}
	if c.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", c.Speed)
	}
	return nil
}

// Sizes returns the board geometry
func (c Config) Sizes() types.Sizes {
	return types.Sizes{Board: c.BoardSize, Cell: c.CellSize}
}

// Interval returns the step interval
func (c Config) Interval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

// SeedValue returns Seed, or a clock-derived seed when Seed is 0
func (c Config) SeedValue() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
