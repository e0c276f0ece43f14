package entity

import "gridsnake/game/types"

// DefaultPalette holds the glyphs a fruit is drawn with
var DefaultPalette = []string{"🍑", "🍎", "🍏", "🍐", "🍓", "🥝"}

// Fruit is the single consumable on the board
type Fruit struct {
	types.Position
	Value string
}
