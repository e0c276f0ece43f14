package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsSelfCollision reports whether the head of body overlaps any other segment
func (cm *CollisionManager) IsSelfCollision(body entity.Body) bool {
	if len(body) < 2 {
		return false
	}
	return body[1:].Occupies(body.Head().Position)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Position, fruit entity.Fruit) bool {
	return pos == fruit.Position
}

// ValidateSpawnPosition checks if a position is free of the body
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Position, body entity.Body) bool {
	return !body.Occupies(pos)
}
