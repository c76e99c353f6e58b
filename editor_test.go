package ripple

import (
	"math"
	"testing"
)

func testQuad() Quad {
	return Quad{{100, 100}, {500, 100}, {500, 400}, {100, 400}}
}

func TestPointerDownStartsDrag(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		hit       bool
		dragIndex int
	}{
		{"exact corner", 100, 100, true, 0},
		{"within radius", 110, 108, true, 0},
		{"second corner", 495, 105, true, 1},
		{"third corner", 500, 400, true, 2},
		{"between corners", 300, 250, false, -1},
		{"just outside radius", 100, 121, false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewQuadEditor(testQuad())
			if got := e.PointerDown(tt.x, tt.y); got != tt.hit {
				t.Fatalf("PointerDown = %v, want %v", got, tt.hit)
			}
			if e.DragIndex() != tt.dragIndex {
				t.Errorf("DragIndex = %d, want %d", e.DragIndex(), tt.dragIndex)
			}
		})
	}
}

func TestPointerDownFirstMatchWins(t *testing.T) {
	// Two corners close enough that one press hits both: corner order decides.
	q := Quad{{100, 100}, {110, 100}, {500, 400}, {100, 400}}
	e := NewQuadEditor(q)
	if !e.PointerDown(105, 100) {
		t.Fatal("expected a hit")
	}
	if e.DragIndex() != 0 {
		t.Errorf("DragIndex = %d, want 0 (first match in corner order)", e.DragIndex())
	}
}

func TestDragMovesOnlyOneCorner(t *testing.T) {
	e := NewQuadEditor(testQuad())
	if !e.PointerDown(500, 100) {
		t.Fatal("expected a hit on corner 1")
	}
	e.PointerMove(520, 80)
	e.PointerMove(540, 60)
	e.PointerUp()

	got := e.Corners()
	want := testQuad()
	want[1] = Vec2{540, 60}
	if got != want {
		t.Errorf("Corners = %v, want %v", got, want)
	}
	if e.DragIndex() != -1 {
		t.Errorf("DragIndex = %d after PointerUp, want -1", e.DragIndex())
	}
}

func TestMoveWithoutDragIsNoOp(t *testing.T) {
	e := NewQuadEditor(testQuad())
	e.PointerMove(300, 300)
	if e.Corners() != testQuad() {
		t.Error("PointerMove without a drag changed the corners")
	}
}

func TestSecondPointerDownIgnoredDuringDrag(t *testing.T) {
	e := NewQuadEditor(testQuad())
	if !e.PointerDown(100, 100) {
		t.Fatal("expected a hit on corner 0")
	}
	if e.PointerDown(500, 100) {
		t.Error("a second gesture must not start while one is in progress")
	}
	if e.DragIndex() != 0 {
		t.Errorf("DragIndex = %d, want 0", e.DragIndex())
	}
}

func TestPointerScale(t *testing.T) {
	e := NewQuadEditor(testQuad())
	e.Scale = 2 // surface pixels are twice source units

	// Surface (200, 200) is source (100, 100): corner 0.
	if !e.PointerDown(200, 200) {
		t.Fatal("expected a hit through the scale factor")
	}
	e.PointerMove(240, 260)
	if got := e.Corners()[0]; got != (Vec2{120, 130}) {
		t.Errorf("corner 0 = %v, want {120 130}", got)
	}
}

func TestPointerMirror(t *testing.T) {
	e := NewQuadEditor(testQuad())
	e.Mirror = true
	e.SourceWidth = 640

	// Mirrored surface x=140 is source x=500: corner 1.
	if !e.PointerDown(140, 100) {
		t.Fatal("expected a hit through the mirror flip")
	}
	if e.DragIndex() != 1 {
		t.Fatalf("DragIndex = %d, want 1", e.DragIndex())
	}
	e.PointerMove(100, 120)
	if got := e.Corners()[1]; got != (Vec2{540, 120}) {
		t.Errorf("corner 1 = %v, want {540 120}", got)
	}
}

func TestSetCorner(t *testing.T) {
	e := NewQuadEditor(testQuad())
	if err := e.SetCorner(2, Vec2{450, 350}); err != nil {
		t.Fatalf("SetCorner error: %v", err)
	}
	if got := e.Corners()[2]; got != (Vec2{450, 350}) {
		t.Errorf("corner 2 = %v, want {450 350}", got)
	}
	if err := e.SetCorner(4, Vec2{}); err == nil {
		t.Error("SetCorner(4) should fail")
	}
	if err := e.SetCorner(-1, Vec2{}); err == nil {
		t.Error("SetCorner(-1) should fail")
	}
}

func TestResetToSnaps(t *testing.T) {
	e := NewQuadEditor(testQuad())
	target := Quad{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	e.ResetTo(target, 0)
	if e.Corners() != target {
		t.Errorf("Corners = %v, want %v", e.Corners(), target)
	}
	if e.Animating() {
		t.Error("zero-duration reset should not animate")
	}
}

func TestResetToAnimates(t *testing.T) {
	e := NewQuadEditor(testQuad())
	target := Quad{{200, 200}, {600, 200}, {600, 500}, {200, 500}}
	e.ResetTo(target, 0.5)
	if !e.Animating() {
		t.Fatal("expected an animation in progress")
	}

	// Halfway through, corners are strictly between start and target.
	for i := 0; i < 15; i++ {
		e.Update(1.0 / 60.0)
	}
	mid := e.Corners()[0]
	if mid.X <= 100 || mid.X >= 200 {
		t.Errorf("mid-animation corner X = %v, want between 100 and 200", mid.X)
	}

	// Run the animation out.
	for i := 0; i < 60; i++ {
		e.Update(1.0 / 60.0)
	}
	if e.Animating() {
		t.Error("animation should have finished")
	}
	got := e.Corners()
	for i := range target {
		if math.Abs(got[i].X-target[i].X) > 0.01 || math.Abs(got[i].Y-target[i].Y) > 0.01 {
			t.Errorf("corner %d = %v, want %v", i, got[i], target[i])
		}
	}
}

func TestPointerDownCancelsReset(t *testing.T) {
	e := NewQuadEditor(testQuad())
	e.ResetTo(Quad{{0, 0}, {900, 0}, {900, 900}, {0, 900}}, 1)
	e.Update(1.0 / 60.0)

	// Grab whichever corner is near its current animated position.
	c := e.Corners()[0]
	if !e.PointerDown(c.X, c.Y) {
		t.Fatal("expected a hit on the animating corner")
	}
	if e.Animating() {
		t.Error("starting a drag should cancel the reset animation")
	}
}

func TestResetToEndsActiveDrag(t *testing.T) {
	e := NewQuadEditor(testQuad())
	e.PointerDown(100, 100)
	e.ResetTo(testQuad(), 0.2)
	if e.DragIndex() != -1 {
		t.Errorf("DragIndex = %d, want -1 after ResetTo", e.DragIndex())
	}
}
