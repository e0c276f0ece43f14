package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// MaxPlacementTries bounds random sampling before falling back to a scan
const MaxPlacementTries = 1000

type FoodManager struct {
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxTries     int
}

// NewFoodManager builds a manager drawing from a generator seeded with seed
func NewFoodManager(seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
		maxTries:     MaxPlacementTries,
	}
}

// PlaceFruit picks a uniformly random free cell in [1, pixels] on both axes
// and a random glyph from palette.
func (fm *FoodManager) PlaceFruit(body entity.Body, pixels int, palette []string) entity.Fruit {
	var fruit entity.Fruit
	for try := 0; try < fm.maxTries; try++ {
		fruit = fm.sample(pixels, palette)

		if fm.collisionMgr.ValidateSpawnPosition(fruit.Position, body) {
			return fruit
		}
	}

	// Body covers most of the board, take the first free cell instead
	for y := 1; y <= pixels; y++ {
		for x := 1; x <= pixels; x++ {
			pos := types.Position{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(pos, body) {
				return entity.Fruit{Position: pos, Value: fruit.Value}
			}
		}
	}
	return fruit
}

func (fm *FoodManager) sample(pixels int, palette []string) entity.Fruit {
	fruit := entity.Fruit{
		Position: types.Position{
			X: fm.rng.Intn(pixels) + 1,
			Y: fm.rng.Intn(pixels) + 1,
		},
	}
	if len(palette) > 0 {
		fruit.Value = palette[fm.rng.Intn(len(palette))]
	}
	return fruit
}
