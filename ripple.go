package ripple

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default draw tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. Copied by value everywhere; nothing owns a Vec2.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Corners returns the rectangle's four corners in the fixed order used by
// homography estimation: top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() Quad {
	return Quad{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// Range is a general-purpose min/max range.
// Used by the particle system for randomized spawn parameters.
type Range struct {
	Min, Max float64
}

// TrackedPoint is one detection-source sample for a single tick: a raw 2D
// position in source (camera) space, a confidence score in [0, 1], and the
// identity of the entity it belongs to (e.g. "left", "right").
type TrackedPoint struct {
	X, Y       float64
	Confidence float64
	ID         string
}

// Kind selects one of the fixed particle effects. Every Kind has its own
// per-tick update rule and draw routine.
type Kind uint8

const (
	KindNormal    Kind = iota // shrinking circles, random hue, speed scales with motion
	KindSparkle               // short-lived rotating five-point stars
	KindFire                  // rising circles fading yellow to red to ash gray
	KindBubble                // long-lived floating rings with a highlight dot
	KindSnow                  // drifting white flecks with sinusoidal wobble
	KindHoliday               // circles in one of three festive hues fixed at spawn
	KindSnowflake             // rotating six-fold branched flakes
	KindGiftBox               // launched gift boxes pulled back down by gravity
)

// kindNames is indexed by Kind. Keep in sync with the constant block above.
var kindNames = [...]string{
	"normal",
	"sparkle",
	"fire",
	"bubble",
	"snow",
	"holiday",
	"snowflake",
	"giftbox",
}

// String returns the lowercase name used in configuration files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindCount is the number of particle effects.
const KindCount = len(kindNames)
