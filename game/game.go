package game

import (
	"github.com/golang/glog"
	"github.com/google/uuid"

	"the-snake/game/entity"
	"the-snake/game/types"
)

var (
	SnakeColor = entity.Color{R: 0, G: 255, B: 0}
	FoodColor  = entity.Color{R: 255, G: 0, B: 0}
)

// Stats are kept for the running session only
type Stats struct {
	Ticks      int
	FoodEaten  int
	Resets     int
	BestLength int
}

// TickResult describes what happened during one Tick
type TickResult struct {
	Tick      int
	Ate       bool
	Collision CollisionType
}

// Game owns the one snake and the one food of a session
type Game struct {
	UUID  string
	Grid  types.Grid
	Stats Stats

	snake *entity.Snake
	food  *entity.Food
}

// NewGame places the snake at origin and the food at a random cell, both
// drawing from rng.
func NewGame(grid types.Grid, origin types.Point, rng types.RNG) *Game {
	g := &Game{
		UUID:  uuid.New().String(),
		Grid:  grid,
		snake: entity.NewSnake(grid, origin, rng, SnakeColor),
		food:  entity.NewFood(grid, rng, FoodColor),
	}
	g.Stats.BestLength = g.snake.Len()
	glog.Infof("Session %s: %dx%d grid, snake at %v heading %v, food at %v",
		g.UUID, grid.Width, grid.Height, g.snake.HeadPosition(), g.snake.Heading(), g.food.Position())
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.food
}

// Drawables returns the entities in paint order
func (g *Game) Drawables() []entity.Drawable {
	return []entity.Drawable{g.food, g.snake}
}

// Tick runs one step of game logic once input has been routed: commit the
// buffered heading, move, eat, then reset on self-collision.
func (g *Game) Tick() TickResult {
	g.Stats.Ticks++
	res := TickResult{Tick: g.Stats.Ticks}

	g.snake.ApplyPendingHeading()
	g.snake.Advance()

	head := g.snake.HeadPosition()
	if IsFoodCollision(head, g.food) {
		g.snake.Grow()
		g.food.Reposition()
		g.Stats.FoodEaten++
		res.Ate = true
		res.Collision = FoodCollision
		glog.V(2).Infof("Ate food at %v, new food at %v", head, g.food.Position())
	}

	if g.snake.Len() > g.Stats.BestLength {
		g.Stats.BestLength = g.snake.Len()
	}

	if IsSelfCollision(g.snake) {
		glog.Infof("Session %s: self collision at %v with length %d, resetting",
			g.UUID, head, g.snake.Len())
		g.snake.Reset()
		g.Stats.Resets++
		res.Collision = SelfCollision
	}

	return res
}
