// Package window draws the board in a raylib window and reads its keyboard.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"the-snake/game/entity"
	"the-snake/game/types"
	"the-snake/input"
)

// Window is a fixed-size raylib surface. Only one may exist per process.
type Window struct {
	grid types.Grid
	bg   entity.Color
}

// Open creates the window. The tick rate is paced by game.Clock, so raylib's
// own frame limiter is left off.
func Open(grid types.Grid, title string) *Window {
	width, height := grid.PixelSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetExitKey(rl.KeyEscape)
	return &Window{grid: grid}
}

func toRaylib(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (w *Window) cellRect(p types.Point) (x, y, size int32) {
	px, py := w.grid.ToPixel(p)
	return int32(px), int32(py), int32(w.grid.CellSize)
}

func (w *Window) BeginFrame(bg entity.Color) {
	w.bg = bg
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(bg))
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func (w *Window) Background() entity.Color {
	return w.bg
}

func (w *Window) FillCell(p types.Point, c entity.Color) {
	x, y, size := w.cellRect(p)
	rl.DrawRectangle(x, y, size, size, toRaylib(c))
}

// OutlineCell draws a one pixel border
func (w *Window) OutlineCell(p types.Point, c entity.Color) {
	x, y, size := w.cellRect(p)
	rl.DrawRectangleLines(x, y, size, size, toRaylib(c))
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Poll drains raylib's key queue in press order. Closing the window or
// pressing Escape produces a quit event.
func (w *Window) Poll() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		return append(events, input.Quit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, input.Press(translate(key)))
	}
	return events
}

func translate(key int32) input.Key {
	switch key {
	case rl.KeyUp:
		return input.KeyUp
	case rl.KeyDown:
		return input.KeyDown
	case rl.KeyLeft:
		return input.KeyLeft
	case rl.KeyRight:
		return input.KeyRight
	default:
		return input.KeyUnknown
	}
}
