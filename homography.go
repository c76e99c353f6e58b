package ripple

import "fmt"

// Homography is a planar projective transform as nine row-major coefficients
// h0..h8, with h8 fixed to 1 by construction.
type Homography [9]float64

// EstimateHomography computes the homography mapping src[i] onto dst[i] for
// the four corner correspondences. It builds the standard 8×8 linear system
// (two equations per correspondence, eight unknowns, h8 appended as 1) and
// solves it via Matrix.Invert.
//
// Returns ErrSingular (wrapped) when the system has no solution, e.g. when
// three of the four source corners are collinear. Callers must skip
// transformation and containment for that tick rather than reuse a stale
// matrix.
func EstimateHomography(src, dst Quad) (Homography, error) {
	a := NewMatrix(8)
	b := make([]float64, 8)
	for i := 0; i < 4; i++ {
		sx, sy := src[i].X, src[i].Y
		dx, dy := dst[i].X, dst[i].Y
		r := 2 * i

		// dx = (h0·sx + h1·sy + h2) / (h6·sx + h7·sy + 1)
		a[r][0] = sx
		a[r][1] = sy
		a[r][2] = 1
		a[r][6] = -sx * dx
		a[r][7] = -sy * dx
		b[r] = dx

		// dy = (h3·sx + h4·sy + h5) / (h6·sx + h7·sy + 1)
		a[r+1][3] = sx
		a[r+1][4] = sy
		a[r+1][5] = 1
		a[r+1][6] = -sx * dy
		a[r+1][7] = -sy * dy
		b[r+1] = dy
	}

	inv, err := a.Invert()
	if err != nil {
		return Homography{}, fmt.Errorf("estimate homography: %w", err)
	}
	h, err := inv.MulVec(b)
	if err != nil {
		return Homography{}, fmt.Errorf("estimate homography: %w", err)
	}

	var out Homography
	copy(out[:], h)
	out[8] = 1
	return out, nil
}

// Apply transforms p by the homography with perspective division.
//
// The result is undefined when the homogeneous coordinate
// Z = h6·x + h7·y + h8 is zero; no clamp is applied. A homography that passed
// estimation without ErrSingular does not produce Z = 0 for points inside the
// source quad in practice.
func (h Homography) Apply(p Vec2) Vec2 {
	z := h[6]*p.X + h[7]*p.Y + h[8]
	return Vec2{
		X: (h[0]*p.X + h[1]*p.Y + h[2]) / z,
		Y: (h[3]*p.X + h[4]*p.Y + h[5]) / z,
	}
}
