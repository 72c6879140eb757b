package ui

import (
	"the-snake/game"
	"the-snake/game/entity"
)

// BackgroundColor fills the board before every frame
var BackgroundColor = entity.Color{R: 0, G: 0, B: 0}

// Surface is a drawing backend: a raylib window or a terminal screen
type Surface interface {
	entity.Surface
	BeginFrame(bg entity.Color)
	EndFrame()
	Close()
}

// Renderer redraws the whole board each tick
type Renderer struct {
	surface Surface
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Render clears the background, then draws the food and the snake
func (r *Renderer) Render(g *game.Game) {
	r.surface.BeginFrame(BackgroundColor)
	for _, d := range g.Drawables() {
		d.Draw(r.surface)
	}
	r.surface.EndFrame()
}
