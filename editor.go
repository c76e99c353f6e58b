package ripple

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultHandleRadius = 20.0

// QuadEditor maintains the four draggable corners of the zone quadrilateral.
// Pointer coordinates arrive in surface (screen) space; the editor divides by
// the surface-to-source scale factor and optionally flips the horizontal axis
// for mirrored camera feeds before hit-testing or moving corners.
//
// At most one corner is dragged per gesture. All methods must be called from
// the tick/gesture thread; the editor is not safe for concurrent use.
type QuadEditor struct {
	corners   Quad
	dragIndex int // -1 when no drag is in progress

	// HandleRadius is the hit-test radius around each corner, in source
	// units. Default 20.
	HandleRadius float64
	// Scale is the surface-to-source scale factor pointer coordinates are
	// divided by. Default 1.
	Scale float64
	// Mirror flips the horizontal axis of incoming pointer coordinates,
	// for horizontally mirrored source feeds. Requires SourceWidth.
	Mirror bool
	// SourceWidth is the source-space width used for the mirror flip.
	SourceWidth float64

	tweens [8]*gween.Tween // X then Y per corner, during an animated reset
	resets int             // tweens still running
}

// NewQuadEditor creates an editor with the given initial corners and no drag
// in progress.
func NewQuadEditor(initial Quad) *QuadEditor {
	return &QuadEditor{
		corners:      initial,
		dragIndex:    -1,
		HandleRadius: defaultHandleRadius,
		Scale:        1,
	}
}

// Corners returns the current quadrilateral. The returned value is a copy;
// mutations mid-tick are observed by the engine on the next tick.
func (e *QuadEditor) Corners() Quad {
	return e.corners
}

// DragIndex returns the index of the corner being dragged, or -1.
func (e *QuadEditor) DragIndex() int {
	return e.dragIndex
}

// SetCorner moves corner i directly, equivalent to dragging it there.
// Intended for keyboard/numeric adjustment. The position is in source space
// (no scale or mirror applied). Returns an error for an index outside [0, 3].
func (e *QuadEditor) SetCorner(i int, p Vec2) error {
	if i < 0 || i > 3 {
		return fmt.Errorf("set corner: index %d out of range", i)
	}
	e.corners[i] = p
	return nil
}

// PointerDown hit-tests the corners against a surface-space pointer position
// and begins a drag on the first corner (in corner order) within
// HandleRadius. Reports whether a drag started. A gesture already in
// progress is left untouched.
func (e *QuadEditor) PointerDown(x, y float64) bool {
	if e.dragIndex != -1 {
		return false
	}
	p := e.toSource(x, y)
	for i, corner := range e.corners {
		dx := p.X - corner.X
		dy := p.Y - corner.Y
		if dx*dx+dy*dy <= e.HandleRadius*e.HandleRadius {
			e.dragIndex = i
			e.cancelReset()
			return true
		}
	}
	return false
}

// PointerMove moves the dragged corner to the surface-space pointer position.
// No-op when no drag is in progress.
func (e *QuadEditor) PointerMove(x, y float64) {
	if e.dragIndex == -1 {
		return
	}
	e.corners[e.dragIndex] = e.toSource(x, y)
}

// PointerUp ends the current drag gesture, if any.
func (e *QuadEditor) PointerUp() {
	e.dragIndex = -1
}

// ResetTo animates all four corners to the target quad over the given
// duration in seconds. Any active drag ends. Call Update each tick to advance
// the animation; a zero or negative duration snaps immediately.
func (e *QuadEditor) ResetTo(target Quad, duration float32) {
	e.dragIndex = -1
	if duration <= 0 {
		e.cancelReset()
		e.corners = target
		return
	}
	for i := 0; i < 4; i++ {
		e.tweens[i*2] = gween.New(float32(e.corners[i].X), float32(target[i].X), duration, ease.OutQuad)
		e.tweens[i*2+1] = gween.New(float32(e.corners[i].Y), float32(target[i].Y), duration, ease.OutQuad)
	}
	e.resets = len(e.tweens)
}

// Animating reports whether a ResetTo animation is still running.
func (e *QuadEditor) Animating() bool {
	return e.resets > 0
}

// Update advances the reset animation by dt seconds. No-op when idle.
func (e *QuadEditor) Update(dt float32) {
	if e.resets == 0 {
		return
	}
	for i, tw := range e.tweens {
		if tw == nil {
			continue
		}
		val, finished := tw.Update(dt)
		v := float64(val)
		if i%2 == 0 {
			e.corners[i/2].X = v
		} else {
			e.corners[i/2].Y = v
		}
		if finished {
			e.tweens[i] = nil
			e.resets--
		}
	}
}

// cancelReset stops an in-flight reset animation, leaving corners where the
// animation last put them.
func (e *QuadEditor) cancelReset() {
	for i := range e.tweens {
		e.tweens[i] = nil
	}
	e.resets = 0
}

// toSource converts surface-space pointer coordinates to source space.
func (e *QuadEditor) toSource(x, y float64) Vec2 {
	sx := x / e.Scale
	sy := y / e.Scale
	if e.Mirror {
		sx = e.SourceWidth - sx
	}
	return Vec2{sx, sy}
}
