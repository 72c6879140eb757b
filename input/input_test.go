package input

import (
	"testing"

	"the-snake/game/types"
)

type recorder struct {
	got []types.Direction
}

func (r *recorder) RequestHeadingChange(dir types.Direction) {
	r.got = append(r.got, dir)
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  Key
		want types.Direction
	}{
		{KeyUp, types.Up},
		{KeyDown, types.Down},
		{KeyLeft, types.Left},
		{KeyRight, types.Right},
		{KeyUnknown, types.None},
		{Key(99), types.None},
	}

	for _, tt := range tests {
		if got := tt.key.Direction(); got != tt.want {
			t.Errorf("Key %d: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestRouteOrder(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}

	quit := r.Route([]Event{Press(KeyUp), Press(KeyUnknown), Press(KeyLeft), Press(KeyDown)}, rec)
	if quit {
		t.Fatalf("Unexpected quit")
	}

	want := []types.Direction{types.Up, types.Left, types.Down}
	if len(rec.got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.got)
	}
	for i := range want {
		if rec.got[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], rec.got[i])
		}
	}
	if r.Forwarded != 3 || r.Ignored != 1 {
		t.Errorf("Expected 3 forwarded / 1 ignored, got %d / %d", r.Forwarded, r.Ignored)
	}
}

func TestRouteQuitStops(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}

	if !r.Route([]Event{Press(KeyUp), Quit, Press(KeyLeft)}, rec) {
		t.Fatalf("Expected quit")
	}
	if len(rec.got) != 1 || rec.got[0] != types.Up {
		t.Errorf("Expected only the event before quit forwarded, got %v", rec.got)
	}
}

func TestRouteEmpty(t *testing.T) {
	if NewRouter().Route(nil, &recorder{}) {
		t.Errorf("Empty poll must not quit")
	}
}
