package ripple

// tickSeconds is the nominal duration of one tick, used to advance editor
// animations. The engine itself is tick-based, not wall-clock based.
const tickSeconds = 1.0 / 60.0

// EmissionStore is the interface for optional ECS integration. When set on an
// Engine, every emission trigger is forwarded to the ECS after particles are
// spawned.
type EmissionStore interface {
	EmitTrigger(t Trigger)
}

// Engine owns one detection zone: the editable quadrilateral, the homography
// onto the destination rectangle, the per-entity motion detector, and the
// particle system. All state is mutated only from Update and the editor's
// gesture methods, on one goroutine; nothing locks.
type Engine struct {
	cfg      Config
	editor   *QuadEditor
	detector *MotionDetector
	system   *System
	store    EmissionStore

	kind    Kind
	h       Homography
	hValid  bool
	running bool

	triggerBuf []Trigger
}

// NewEngine creates a stopped engine. The zone quad starts as the centered
// middle-third rectangle of a 1280×720 source; load a calibration or drag the
// corners to change it. Call Start before the first Update.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		editor:   NewQuadEditor(Quad{{320, 180}, {960, 180}, {960, 540}, {320, 540}}),
		detector: NewMotionDetector(cfg.ConfidenceThreshold, cfg.DisplacementThreshold),
		system:   NewSystem(cfg.MaxParticles),
		kind:     cfg.Kind(),
	}
}

// Editor returns the zone quadrilateral editor.
func (e *Engine) Editor() *QuadEditor {
	return e.editor
}

// System returns the particle system.
func (e *Engine) System() *System {
	return e.system
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetStore attaches an ECS bridge. Pass nil to detach.
func (e *Engine) SetStore(store EmissionStore) {
	e.store = store
}

// Kind returns the active particle effect.
func (e *Engine) Kind() Kind {
	return e.kind
}

// SetKind switches the active particle effect. Live particles of the old
// kind play out unchanged.
func (e *Engine) SetKind(k Kind) {
	e.kind = k
}

// Start lets Update ticks run. Idempotent.
func (e *Engine) Start() {
	e.running = true
}

// Stop halts the engine: subsequent Update calls are no-ops until Start.
// Idempotent, and safe to call before the first tick. Stop the engine before
// releasing the detection source or the draw surface so no tick touches a
// freed collaborator.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether ticks are being processed.
func (e *Engine) Running() bool {
	return e.running
}

// Update runs one tick: snapshot the quad, estimate the homography, run
// motion detection on the samples, emit particles for each trigger, then step
// the simulation. The homography always reflects the corner state as of the
// start of the tick; gesture mutations land on the next tick.
//
// A degenerate quad is recoverable: detection and emission are skipped for
// the tick (every entity goes Absent) and live particles still step.
func (e *Engine) Update(samples []TrackedPoint) {
	if !e.running {
		return
	}

	e.editor.Update(tickSeconds)
	zone := e.editor.Corners()

	h, err := EstimateHomography(zone, e.cfg.DestRect().Corners())
	e.h, e.hValid = h, err == nil

	e.triggerBuf = e.detector.Observe(samples, e.h, e.hValid, zone, e.triggerBuf[:0])
	for _, tr := range e.triggerBuf {
		e.system.Emit(e.kind, tr.Position, tr.Distance, e.cfg.ParticlesPerEmission)
		if e.store != nil {
			e.store.EmitTrigger(tr)
		}
	}

	e.system.Step()
}

// Homography returns the transform computed on the most recent tick and
// whether it is valid. Invalid means the quad was degenerate that tick.
func (e *Engine) Homography() (Homography, bool) {
	return e.h, e.hValid
}

// Triggers returns the emission triggers from the most recent tick. The
// slice is reused across ticks; copy it to retain.
func (e *Engine) Triggers() []Trigger {
	return e.triggerBuf
}

// Draw renders all live particles onto the canvas.
func (e *Engine) Draw(c Canvas) {
	e.system.Draw(c)
}

// DrawZone renders the zone outline and its corner handles in source space,
// for calibration overlays. The dragged handle, if any, is highlighted.
func (e *Engine) DrawZone(c Canvas) {
	zone := e.editor.Corners()
	outline := Color{0.2, 0.9, 0.6, 1}
	if !e.hValid {
		outline = Color{0.95, 0.3, 0.2, 1}
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		c.StrokeLine(zone[i].X, zone[i].Y, zone[j].X, zone[j].Y, 2, outline, 0.9)
	}
	for i, corner := range zone {
		alpha := 0.6
		if i == e.editor.DragIndex() {
			alpha = 1
		}
		c.FillCircle(corner.X, corner.Y, 6, outline, alpha)
	}
}
