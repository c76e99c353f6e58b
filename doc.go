// Package ripple is a motion-reactive particle engine for [Ebitengine].
//
// Ripple maps tracked body points (hands, wands, anything a pose detector can
// follow) from a camera-space quadrilateral onto a flat display rectangle via
// a planar homography, watches those points for frame-to-frame movement, and
// fires particle bursts wherever movement happens. It is the engine behind
// interactive "detection zone" installations: point a camera at a wall, drag
// the four zone corners over the area you care about, and the display surface
// lights up when something moves inside it.
//
// Ripple does not detect anything itself. Feed it a slice of [TrackedPoint]
// once per tick from whatever landmark source you use; ripple consumes the
// points and issues stateless draw commands against a [Canvas].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := ripple.NewEngine(ripple.DefaultConfig())
//	ripple.Run(engine, mySource, ripple.RunConfig{
//		Title: "Ripple", Width: 400, Height: 300,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Engine.Update] and [Engine.Draw] directly:
//
//	type Game struct {
//		engine *ripple.Engine
//		source ripple.Source
//	}
//
//	func (g *Game) Update() error {
//		g.engine.Update(g.source.Points())
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.engine.Draw(ripple.NewImageCanvas(s))
//	}
//
// # Pipeline
//
// Each tick runs one synchronous pass: the zone quadrilateral is snapshotted,
// a homography onto the destination rectangle is estimated from it, every
// tracked point is transformed and tested for containment, movement beyond
// the displacement threshold triggers an emission, and the particle system is
// stepped. A degenerate quadrilateral (three collinear corners) is a
// recoverable condition: the tick simply skips transformation and emission.
//
// # Key features
//
// Ripple includes eight particle effects (see [Kind]), an interactive
// [QuadEditor] with pointer/touch corner dragging and mirrored-feed support,
// YAML configuration, calibration persistence (via [gdata]), tween-animated
// zone resets (via [gween]), and ECS integration (via [Donburi] adapter in
// ripple/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gdata]: https://github.com/quasilyte/gdata
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package ripple
