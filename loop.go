package ripple

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source yields one tick's worth of tracked points. Implementations wrap an
// external pose/landmark detector; Points is called exactly once per tick
// from the game loop goroutine.
type Source interface {
	Points() []TrackedPoint
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() []TrackedPoint

// Points implements Source.
func (f SourceFunc) Points() []TrackedPoint {
	return f()
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowStats overlays FPS/TPS and the live particle count.
	ShowStats bool
	// ShowZone overlays the zone outline and its draggable corner handles.
	ShowZone bool
}

// Run creates a window, starts the engine, and drives it with ebiten's game
// loop until the window closes. Mouse and touch input is forwarded to the
// engine's QuadEditor so the zone corners are draggable out of the box. Run
// stops the engine before returning, so a Source can be released safely
// afterwards.
//
// For full control over the loop, input, or layout, implement ebiten.Game
// yourself and call Engine.Update and Engine.Draw directly.
func Run(engine *Engine, src Source, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}

	g := &game{engine: engine, source: src, cfg: cfg}
	if cfg.ShowStats {
		g.stats = NewStatsOverlay(engine)
	}
	engine.Start()
	defer engine.Stop()
	return ebiten.RunGame(g)
}

// game adapts an Engine to ebiten.Game.
type game struct {
	engine   *Engine
	source   Source
	cfg      RunConfig
	stats    *StatsOverlay
	touchIDs []ebiten.TouchID
}

func (g *game) Update() error {
	g.forwardPointer()
	g.engine.Update(g.source.Points())
	return nil
}

// forwardPointer feeds mouse and touch state to the quad editor. The mouse
// and the first active touch both act as the single drag pointer; the editor
// ignores extra gestures while one is in progress.
func (g *game) forwardPointer() {
	editor := g.engine.Editor()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		editor.PointerDown(float64(x), float64(y))
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		editor.PointerMove(float64(x), float64(y))
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		editor.PointerUp()
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		editor.PointerDown(float64(x), float64(y))
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		editor.PointerMove(float64(x), float64(y))
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		editor.PointerUp()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	canvas := NewImageCanvas(screen)
	if g.cfg.ShowZone {
		g.engine.DrawZone(canvas)
	}
	g.engine.Draw(canvas)
	if g.stats != nil {
		g.stats.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
