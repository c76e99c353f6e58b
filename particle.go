package ripple

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle simulation state. Unexported; managed by System.
// Fields past the common block are only meaningful for some kinds.
type particle struct {
	kind        Kind
	x, y        float64
	vx, vy      float64
	size        float64
	life        float64 // remaining lifetime in ticks
	initialLife float64 // lifetime at spawn (for the fade-out ratio)
	decay       float64 // life removed per tick
	r, g, b     float64

	rotation float64 // sparkle, snowflake, giftbox
	spin     float64 // rotation added per tick
	phase    float64 // wobble phase (bubble, snow)
	wobble   float64 // wobble phase advance per tick
	amp      float64 // wobble amplitude in pixels
	gravity  float64 // downward acceleration per tick (giftbox)

	ribbonR, ribbonG, ribbonB float64 // giftbox ribbon
}

// System owns the live particle collection: an unordered multiset advanced by
// Step and rendered by Draw. Particles are appended on emission and
// swap-removed the same tick their life reaches zero.
type System struct {
	particles []particle
	max       int    // cap on live particles; 0 means unbounded
	starBuf   []Vec2 // scratch for star polygons, reused across draws
}

// NewSystem creates a particle system. maxParticles caps the live count
// (emissions past the cap are dropped); pass 0 for no cap.
func NewSystem(maxParticles int) *System {
	return &System{max: maxParticles}
}

// AliveCount returns the number of live particles.
func (s *System) AliveCount() int {
	return len(s.particles)
}

// Reset removes all live particles.
func (s *System) Reset() {
	s.particles = s.particles[:0]
}

// Emit spawns count particles of the given kind at pos. magnitude is a hint
// from the motion detector (destination-space displacement); kinds that react
// to it spawn faster or larger particles for bigger movements. Each particle
// is randomized independently within its kind's ranges.
func (s *System) Emit(kind Kind, pos Vec2, magnitude float64, count int) {
	for i := 0; i < count; i++ {
		if s.max > 0 && len(s.particles) >= s.max {
			return
		}
		s.particles = append(s.particles, spawn(kind, pos, magnitude))
	}
}

// Step advances every live particle by one tick and removes the ones whose
// life reached zero. Removal is swap-remove within the same pass: no entry is
// skipped or processed twice.
func (s *System) Step() {
	i := 0
	for i < len(s.particles) {
		p := &s.particles[i]
		p.life -= p.decay
		if p.life <= 0 {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
			continue
		}
		stepParticle(p)
		i++
	}
}

// spawn builds one randomized particle of the given kind at pos.
func spawn(kind Kind, pos Vec2, magnitude float64) particle {
	p := particle{
		kind:  kind,
		x:     pos.X,
		y:     pos.Y,
		decay: 1,
	}

	switch kind {
	case KindNormal:
		speed := Range{0.5, 1.0 + magnitude*0.25}.Random()
		angle := rand.Float64() * 2 * math.Pi
		p.vx = math.Cos(angle) * speed
		p.vy = math.Sin(angle) * speed
		p.size = Range{2, 4 + magnitude*0.3}.Random()
		p.life = Range{30, 60}.Random()
		c := hueColor(rand.Float64())
		p.r, p.g, p.b = c.R, c.G, c.B

	case KindSparkle:
		p.vx = Range{-0.5, 0.5}.Random()
		p.vy = Range{-0.5, 0.5}.Random()
		p.size = Range{3, 6}.Random()
		p.life = Range{20, 32}.Random()
		p.decay = 2
		p.rotation = rand.Float64() * 2 * math.Pi
		p.spin = Range{-0.2, 0.2}.Random()
		p.r, p.g, p.b = 1, 0.95, 0.6

	case KindFire:
		p.vx = Range{-0.4, 0.4}.Random()
		p.vy = Range{-2.5, -1.0}.Random()
		p.size = Range{3, 7}.Random()
		p.life = Range{40, 70}.Random()
		p.r, p.g, p.b = 1, 0.9, 0.2

	case KindBubble:
		p.vy = Range{-1.5, -0.5}.Random()
		p.size = Range{4, 9}.Random()
		p.life = Range{60, 120}.Random()
		p.decay = 0.5
		p.phase = rand.Float64() * 2 * math.Pi
		p.wobble = Range{0.05, 0.12}.Random()
		p.amp = Range{0.5, 1.5}.Random()
		p.r, p.g, p.b = 0.7, 0.9, 1

	case KindSnow:
		p.vy = Range{0.5, 1.5}.Random()
		p.size = Range{1.5, 3}.Random()
		p.life = Range{80, 140}.Random()
		p.decay = 0.5
		p.phase = rand.Float64() * 2 * math.Pi
		p.wobble = Range{0.03, 0.08}.Random()
		p.amp = Range{0.3, 1.0}.Random()
		p.r, p.g, p.b = 1, 1, 1

	case KindHoliday:
		speed := Range{0.5, 2.5}.Random()
		angle := rand.Float64() * 2 * math.Pi
		p.vx = math.Cos(angle) * speed
		p.vy = math.Sin(angle) * speed
		p.size = Range{2, 5}.Random()
		p.life = Range{30, 60}.Random()
		c := holidayPalette[rand.IntN(len(holidayPalette))]
		p.r, p.g, p.b = c.R, c.G, c.B

	case KindSnowflake:
		p.vx = Range{-0.3, 0.3}.Random()
		p.vy = Range{0.4, 1.2}.Random()
		p.size = Range{5, 10}.Random()
		p.life = Range{80, 140}.Random()
		p.decay = 0.5
		p.rotation = rand.Float64() * 2 * math.Pi
		p.spin = Range{-0.05, 0.05}.Random()
		p.r, p.g, p.b = 0.85, 0.92, 1

	case KindGiftBox:
		p.vx = Range{-1.5, 1.5}.Random()
		p.vy = Range{-6, -3}.Random()
		p.size = Range{6, 12}.Random()
		p.life = Range{50, 80}.Random()
		p.gravity = 0.15
		p.rotation = rand.Float64() * 2 * math.Pi
		p.spin = Range{-0.1, 0.1}.Random()
		box := giftPalette[rand.IntN(len(giftPalette))]
		ribbon := giftPalette[rand.IntN(len(giftPalette))]
		p.r, p.g, p.b = box.R, box.G, box.B
		p.ribbonR, p.ribbonG, p.ribbonB = ribbon.R, ribbon.G, ribbon.B
	}

	p.initialLife = p.life
	return p
}

// stepParticle applies one tick of the kind's motion rule. Life has already
// been decremented by Step; size only ever shrinks (or holds), never grows.
func stepParticle(p *particle) {
	switch p.kind {
	case KindNormal:
		p.x += p.vx
		p.y += p.vy
		p.size *= 0.96

	case KindSparkle:
		p.x += p.vx
		p.y += p.vy
		p.rotation += p.spin
		p.size *= 0.98

	case KindFire:
		p.x += p.vx + Range{-0.3, 0.3}.Random()
		p.y += p.vy
		p.size *= 0.985
		// Color evolves yellow → red → ash gray over lifetime progress.
		t := 1 - p.life/p.initialLife
		if t < 0.5 {
			c := lerpColor(Color{1, 0.9, 0.2, 1}, Color{0.9, 0.2, 0.1, 1}, t*2)
			p.r, p.g, p.b = c.R, c.G, c.B
		} else {
			c := lerpColor(Color{0.9, 0.2, 0.1, 1}, Color{0.45, 0.45, 0.45, 1}, (t-0.5)*2)
			p.r, p.g, p.b = c.R, c.G, c.B
		}

	case KindBubble:
		p.phase += p.wobble
		p.x += p.vx + math.Sin(p.phase)*p.amp
		p.y += p.vy

	case KindSnow:
		p.phase += p.wobble
		p.x += p.vx + math.Sin(p.phase)*p.amp
		p.y += p.vy
		// Flecks hold their size until the last quarter of their life.
		if p.life < p.initialLife*0.25 {
			p.size *= 0.93
		}

	case KindHoliday:
		p.x += p.vx
		p.y += p.vy
		p.size *= 0.97

	case KindSnowflake:
		p.x += p.vx
		p.y += p.vy
		p.rotation += p.spin

	case KindGiftBox:
		p.vy += p.gravity
		p.x += p.vx
		p.y += p.vy
		p.rotation += p.spin
	}
}

// holidayPalette is the set of festive hues a Holiday particle picks from at
// spawn. The choice is fixed for the particle's lifetime.
var holidayPalette = [...]Color{
	{0.86, 0.08, 0.24, 1}, // crimson
	{0.13, 0.55, 0.13, 1}, // forest green
	{1, 0.84, 0, 1},       // gold
}

// giftPalette supplies gift box and ribbon colors.
var giftPalette = [...]Color{
	{0.86, 0.12, 0.2, 1},
	{0.16, 0.5, 0.85, 1},
	{0.95, 0.78, 0.1, 1},
	{0.5, 0.2, 0.7, 1},
}

// lerpColor linearly interpolates between a and b by t.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// hueColor converts a hue in [0, 1) to a fully saturated RGB color.
func hueColor(h float64) Color {
	sector := h * 6
	i := int(sector) % 6
	f := sector - math.Floor(sector)
	switch i {
	case 0:
		return Color{1, f, 0, 1}
	case 1:
		return Color{1 - f, 1, 0, 1}
	case 2:
		return Color{0, 1, f, 1}
	case 3:
		return Color{0, 1 - f, 1, 1}
	case 4:
		return Color{f, 0, 1, 1}
	default:
		return Color{1, 0, 1 - f, 1}
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
