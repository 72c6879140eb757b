package game

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

// CollisionType represents what the head ran into on a tick
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// IsFoodCollision checks if the head sits on the food
func IsFoodCollision(head types.Point, food *entity.Food) bool {
	return head == food.Position()
}

// IsSelfCollision checks if the head overlaps the rest of the body
func IsSelfCollision(snake *entity.Snake) bool {
	return snake.CollidesWithSelf()
}
