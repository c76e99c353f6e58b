package ripple

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the stateless draw-command surface the engine renders to.
// Coordinates are destination-space pixels; alpha multiplies the color's own
// alpha. Implementations must not retain the point slices passed to them.
type Canvas interface {
	// FillCircle draws a filled circle of radius r centered at (x, y).
	FillCircle(x, y, r float64, col Color, alpha float64)
	// StrokeCircle draws a circle outline of the given stroke width.
	StrokeCircle(x, y, r, width float64, col Color, alpha float64)
	// FillPolygon draws a filled convex polygon.
	FillPolygon(points []Vec2, col Color, alpha float64)
	// FillRect draws a filled rectangle of size w×h centered at (x, y),
	// rotated by angle radians about its center.
	FillRect(x, y, w, h, angle float64, col Color, alpha float64)
	// StrokeLine draws a line segment of the given stroke width.
	StrokeLine(x1, y1, x2, y2, width float64, col Color, alpha float64)
}

const circleSegments = 24

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// All canvas geometry samples it, tinted per-vertex.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// ImageCanvas renders canvas commands onto an ebiten.Image using triangle
// fans over a white pixel. Vertex and index buffers are reused across calls.
type ImageCanvas struct {
	dst   *ebiten.Image
	verts []ebiten.Vertex
	inds  []uint16
	pts   []Vec2
}

// NewImageCanvas wraps dst in a Canvas. The canvas may be reused across
// frames as long as dst stays valid.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

// FillCircle draws a filled circle as a 24-segment triangle fan.
func (c *ImageCanvas) FillCircle(x, y, r float64, col Color, alpha float64) {
	c.pts = c.pts[:0]
	for i := 0; i < circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		c.pts = append(c.pts, Vec2{x + math.Cos(a)*r, y + math.Sin(a)*r})
	}
	c.FillPolygon(c.pts, col, alpha)
}

// StrokeCircle draws a circle outline as a ring strip of quads.
func (c *ImageCanvas) StrokeCircle(x, y, r, width float64, col Color, alpha float64) {
	inner := r - width/2
	outer := r + width/2
	if inner < 0 {
		inner = 0
	}

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for i := 0; i < circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		cos, sin := math.Cos(a), math.Sin(a)
		c.verts = append(c.verts,
			tintedVertex(x+cos*inner, y+sin*inner, col, alpha),
			tintedVertex(x+cos*outer, y+sin*outer, col, alpha),
		)
	}
	for i := 0; i < circleSegments; i++ {
		i0 := uint16(i * 2)
		i1 := i0 + 1
		j0 := uint16((i + 1) % circleSegments * 2)
		j1 := j0 + 1
		c.inds = append(c.inds, i0, i1, j1, i0, j1, j0)
	}
	c.submit()
}

// FillPolygon draws a filled convex polygon as a triangle fan.
func (c *ImageCanvas) FillPolygon(points []Vec2, col Color, alpha float64) {
	n := len(points)
	if n < 3 {
		return
	}
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for _, p := range points {
		c.verts = append(c.verts, tintedVertex(p.X, p.Y, col, alpha))
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		c.inds = append(c.inds, 0, uint16(i+1), uint16(i+2))
	}
	c.submit()
}

// FillRect draws a rotated filled rectangle as two triangles.
func (c *ImageCanvas) FillRect(x, y, w, h, angle float64, col Color, alpha float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	hw, hh := w/2, h/2
	c.pts = c.pts[:0]
	for _, corner := range [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		c.pts = append(c.pts, Vec2{
			X: x + corner.X*cos - corner.Y*sin,
			Y: y + corner.X*sin + corner.Y*cos,
		})
	}
	c.FillPolygon(c.pts, col, alpha)
}

// StrokeLine draws a line segment as a width-thick quad.
func (c *ImageCanvas) StrokeLine(x1, y1, x2, y2, width float64, col Color, alpha float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset.
	ox := -dy / length * width / 2
	oy := dx / length * width / 2
	c.pts = c.pts[:0]
	c.pts = append(c.pts,
		Vec2{x1 + ox, y1 + oy},
		Vec2{x2 + ox, y2 + oy},
		Vec2{x2 - ox, y2 - oy},
		Vec2{x1 - ox, y1 - oy},
	)
	c.FillPolygon(c.pts, col, alpha)
}

// submit flushes the current vertex/index buffers with standard alpha blending.
func (c *ImageCanvas) submit() {
	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendSourceOver
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), op)
}

// tintedVertex builds a premultiplied-color vertex sampling the white pixel.
func tintedVertex(x, y float64, col Color, alpha float64) ebiten.Vertex {
	a := float32(clamp01(col.A * alpha))
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(col.R) * a,
		ColorG: float32(col.G) * a,
		ColorB: float32(col.B) * a,
		ColorA: a,
	}
}
