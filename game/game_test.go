package game

import (
	"context"
	"testing"
	"time"

	"the-snake/game/types"
	"the-snake/input"
)

// fixedRNG replays vals in order, modulo n
type fixedRNG struct {
	vals []int
	i    int
}

func (r *fixedRNG) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

var grid = types.GridFromScreen(640, 480, 20)

var origin = types.Point{X: 5, Y: 5}

// newScenarioGame starts the snake at (5,5) heading right. NewGame draws the
// heading first, then the food cell; later draws go to food repositions.
func newScenarioGame(rest ...int) *Game {
	vals := append([]int{1, 20, 20}, rest...) // Directions[1] == Right
	return NewGame(grid, origin, &fixedRNG{vals: vals})
}

func TestNewGame(t *testing.T) {
	g := newScenarioGame()
	if g.Grid.Width != 32 || g.Grid.Height != 24 {
		t.Errorf("Expected 32x24 grid, got %dx%d", g.Grid.Width, g.Grid.Height)
	}
	if g.GetSnake().Heading() != types.Right {
		t.Errorf("Expected heading right, got %v", g.GetSnake().Heading())
	}
	if g.UUID == "" {
		t.Errorf("Expected a session id")
	}
	if len(g.Drawables()) != 2 {
		t.Errorf("Expected food and snake drawables")
	}
}

func TestTickScenarioWithoutFood(t *testing.T) {
	g := newScenarioGame()
	res := g.Tick()

	body := g.GetSnake().Segments()
	if len(body) != 1 || body[0] != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected [(6,5)], got %v", body)
	}
	if res.Ate || res.Collision != NoCollision || res.Tick != 1 {
		t.Errorf("Unexpected result %+v", res)
	}
}

func TestTickScenarioEatsFood(t *testing.T) {
	g := newScenarioGame(10, 10)
	g.GetFood().PlaceAt(types.Point{X: 6, Y: 5})

	res := g.Tick()

	if !res.Ate || res.Collision != FoodCollision {
		t.Errorf("Expected food collision, got %+v", res)
	}
	if g.GetSnake().TargetLength() != 2 {
		t.Errorf("Expected target length 2, got %d", g.GetSnake().TargetLength())
	}
	if g.GetFood().Position() == (types.Point{X: 6, Y: 5}) {
		t.Errorf("Food must move after being eaten")
	}
	if g.Stats.FoodEaten != 1 {
		t.Errorf("Expected 1 food eaten, got %d", g.Stats.FoodEaten)
	}

	g.Tick()
	if g.GetSnake().Len() != 2 {
		t.Errorf("Expected the snake to grow on the following tick, got length %d", g.GetSnake().Len())
	}
}

func TestTickAppliesPendingHeading(t *testing.T) {
	g := newScenarioGame()
	g.GetSnake().RequestHeadingChange(types.Down)
	g.Tick()
	if head := g.GetSnake().HeadPosition(); head != (types.Point{X: 5, Y: 6}) {
		t.Errorf("Expected head (5,6), got %v", head)
	}
}

func TestTickResetsOnSelfCollision(t *testing.T) {
	// Food sits ahead of the snake in a row; each tick eats one and the
	// next reposition puts another in front.
	g := newScenarioGame(7, 5, 8, 5, 9, 5, 10, 5, 0, 0)
	s := g.GetSnake()
	g.GetFood().PlaceAt(types.Point{X: 6, Y: 5})
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	if s.Len() != 5 {
		t.Fatalf("Expected length 5, got %d", s.Len())
	}

	// Curl back into the body: down, left, up
	for _, d := range []types.Direction{types.Down, types.Left, types.Up} {
		s.RequestHeadingChange(d)
		res := g.Tick()
		if d != types.Up && res.Collision == SelfCollision {
			t.Fatalf("Collided early turning %v", d)
		}
		if d == types.Up {
			if res.Collision != SelfCollision {
				t.Fatalf("Expected self collision, got %+v (body %v)", res, s.Segments())
			}
		}
	}

	if s.Len() != 1 || s.TargetLength() != 1 || s.HeadPosition() != origin {
		t.Errorf("Expected reset to origin, got %v target %d", s.Segments(), s.TargetLength())
	}
	if g.Stats.Resets != 1 {
		t.Errorf("Expected 1 reset, got %d", g.Stats.Resets)
	}
	if g.Stats.BestLength != 6 {
		t.Errorf("Expected best length 6, got %d", g.Stats.BestLength)
	}
}

func TestTickLengthInvariant(t *testing.T) {
	g := NewGame(grid, origin, types.NewRNG(42))
	s := g.GetSnake()
	for i := 0; i < 2000; i++ {
		s.RequestHeadingChange(types.Directions[(i/5)%4])
		res := g.Tick()
		switch {
		case res.Collision == SelfCollision:
			if s.Len() != 1 {
				t.Fatalf("Tick %d: expected length 1 after reset, got %d", i, s.Len())
			}
		case res.Ate:
			if s.Len() != s.TargetLength()-1 {
				t.Fatalf("Tick %d: len=%d target=%d right after eating", i, s.Len(), s.TargetLength())
			}
		default:
			if s.Len() != s.TargetLength() {
				t.Fatalf("Tick %d: len=%d target=%d", i, s.Len(), s.TargetLength())
			}
		}
		if !g.Grid.Contains(s.HeadPosition()) {
			t.Fatalf("Tick %d: head %v left the grid", i, s.HeadPosition())
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	g1 := NewGame(grid, origin, types.NewRNG(12345))
	g2 := NewGame(grid, origin, types.NewRNG(12345))

	for i := 0; i < 300; i++ {
		if i%11 == 0 {
			d := types.Directions[i%4]
			g1.GetSnake().RequestHeadingChange(d)
			g2.GetSnake().RequestHeadingChange(d)
		}
		g1.Tick()
		g2.Tick()
	}

	if g1.GetSnake().HeadPosition() != g2.GetSnake().HeadPosition() {
		t.Errorf("Head mismatch: %v vs %v", g1.GetSnake().HeadPosition(), g2.GetSnake().HeadPosition())
	}
	if g1.GetFood().Position() != g2.GetFood().Position() {
		t.Errorf("Food mismatch: %v vs %v", g1.GetFood().Position(), g2.GetFood().Position())
	}
	if g1.Stats != g2.Stats {
		t.Errorf("Stats mismatch: %+v vs %+v", g1.Stats, g2.Stats)
	}
}

// scripted hands out one batch of events per Poll
type scripted struct {
	batches [][]input.Event
}

func (s *scripted) Poll() []input.Event {
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

type countingRenderer struct {
	frames int
	heads  []types.Point
}

func (r *countingRenderer) Render(g *Game) {
	r.frames++
	r.heads = append(r.heads, g.GetSnake().HeadPosition())
}

func TestLoopStep(t *testing.T) {
	g := newScenarioGame()
	src := &scripted{batches: [][]input.Event{
		{input.Press(input.KeyUp), input.Press(input.KeyLeft)}, // left is the inverse of right: dropped
		nil,
		{input.Quit},
	}}
	r := &countingRenderer{}
	l := NewLoop(g, src, r, NewClock(20))

	if l.Step() {
		t.Fatalf("Unexpected quit")
	}
	if head := g.GetSnake().HeadPosition(); head != (types.Point{X: 5, Y: 4}) {
		t.Errorf("Expected head (5,4), got %v", head)
	}
	if l.Step() {
		t.Fatalf("Unexpected quit")
	}
	if !l.Step() {
		t.Fatalf("Expected quit")
	}
	if g.Stats.Ticks != 2 || r.frames != 2 {
		t.Errorf("Expected 2 ticks and 2 frames, got %d / %d", g.Stats.Ticks, r.frames)
	}
	want := []types.Point{{X: 5, Y: 4}, {X: 5, Y: 3}}
	for i, h := range r.heads {
		if h != want[i] {
			t.Errorf("Frame %d: expected head %v, got %v", i, want[i], h)
		}
	}
}

func TestLoopRunQuits(t *testing.T) {
	g := newScenarioGame()
	src := &scripted{batches: [][]input.Event{nil, nil, {input.Quit}}}
	r := &countingRenderer{}
	clock := NewClock(20)
	clock.sleep = func(time.Duration) {}

	if err := NewLoop(g, src, r, clock).Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if g.Stats.Ticks != 2 {
		t.Errorf("Expected 2 ticks before quit, got %d", g.Stats.Ticks)
	}
	// initial frame plus one per tick
	if r.frames != 3 {
		t.Errorf("Expected 3 frames, got %d", r.frames)
	}
}

func TestLoopRunCancelled(t *testing.T) {
	g := newScenarioGame()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock := NewClock(20)
	clock.sleep = func(time.Duration) {}
	if err := NewLoop(g, &scripted{}, &countingRenderer{}, clock).Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if g.Stats.Ticks != 0 {
		t.Errorf("Expected no ticks after cancellation, got %d", g.Stats.Ticks)
	}
}
