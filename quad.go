package ripple

// Quad is an ordered quadrilateral: four corners in a consistent winding
// order. The containment test requires the quad to be convex and
// non-self-intersecting; winding direction does not matter.
type Quad [4]Vec2

// Contains reports whether (x, y) lies inside the quad using the
// cross-product sign test: the point is inside iff it falls on the same side
// of all four edges. A point exactly on an edge counts as inside.
//
// Free-form corner dragging can produce a concave or self-intersecting quad;
// no convexity check is performed and containment results for such quads are
// unspecified.
func (q Quad) Contains(x, y float64) bool {
	var positive, negative bool
	for i := 0; i < 4; i++ {
		x1 := q[i].X
		y1 := q[i].Y
		j := (i + 1) % 4
		x2 := q[j].X
		y2 := q[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Centroid returns the average of the four corners.
func (q Quad) Centroid() Vec2 {
	return Vec2{
		X: (q[0].X + q[1].X + q[2].X + q[3].X) / 4,
		Y: (q[0].Y + q[1].Y + q[2].Y + q[3].Y) / 4,
	}
}
