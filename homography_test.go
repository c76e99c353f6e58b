package ripple

import (
	"errors"
	"math"
	"testing"
)

func vecClose(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestEstimateHomographyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  Quad
	}{
		{"axis-aligned zone", Quad{{320, 180}, {960, 180}, {960, 540}, {320, 540}}},
		{"perspective skew", Quad{{100, 80}, {500, 140}, {460, 400}, {60, 360}}},
		{"small quad", Quad{{1, 1}, {3, 1.5}, {3.2, 4}, {0.5, 3.8}}},
	}
	dst := Rect{Width: 400, Height: 300}.Corners()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := EstimateHomography(tt.src, dst)
			if err != nil {
				t.Fatalf("EstimateHomography error: %v", err)
			}
			for i := range tt.src {
				got := h.Apply(tt.src[i])
				if !vecClose(got, dst[i], 1e-6) {
					t.Errorf("corner %d: Apply = (%v, %v), want (%v, %v)",
						i, got.X, got.Y, dst[i].X, dst[i].Y)
				}
			}
		})
	}
}

func TestEstimateHomographyIdentity(t *testing.T) {
	q := Quad{{0, 0}, {400, 0}, {400, 300}, {0, 300}}
	h, err := EstimateHomography(q, q)
	if err != nil {
		t.Fatalf("EstimateHomography error: %v", err)
	}
	// Mapping a quad onto itself must fix interior points too.
	for _, p := range []Vec2{{200, 150}, {10, 290}, {399, 1}} {
		if got := h.Apply(p); !vecClose(got, p, 1e-6) {
			t.Errorf("Apply(%v) = %v, want unchanged", p, got)
		}
	}
}

func TestEstimateHomographyAffineMidpoint(t *testing.T) {
	// For a parallelogram-to-rectangle mapping the transform is affine, so
	// the source centroid must land on the destination centroid.
	src := Quad{{320, 180}, {960, 180}, {960, 540}, {320, 540}}
	dst := Rect{Width: 400, Height: 300}.Corners()
	h, err := EstimateHomography(src, dst)
	if err != nil {
		t.Fatalf("EstimateHomography error: %v", err)
	}
	got := h.Apply(src.Centroid())
	if !vecClose(got, Vec2{200, 150}, 1e-6) {
		t.Errorf("centroid mapped to (%v, %v), want (200, 150)", got.X, got.Y)
	}
}

func TestEstimateHomographyH8IsOne(t *testing.T) {
	src := Quad{{100, 80}, {500, 140}, {460, 400}, {60, 360}}
	h, err := EstimateHomography(src, Rect{Width: 400, Height: 300}.Corners())
	if err != nil {
		t.Fatalf("EstimateHomography error: %v", err)
	}
	if h[8] != 1 {
		t.Errorf("h8 = %v, want 1", h[8])
	}
}

func TestEstimateHomographyDegenerate(t *testing.T) {
	dst := Rect{Width: 400, Height: 300}.Corners()
	tests := []struct {
		name string
		src  Quad
	}{
		{"three collinear corners", Quad{{0, 0}, {10, 0}, {20, 0}, {0, 10}}},
		{"all corners collinear", Quad{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"coincident corners", Quad{{5, 5}, {5, 5}, {10, 10}, {0, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EstimateHomography(tt.src, dst); !errors.Is(err, ErrSingular) {
				t.Errorf("EstimateHomography error = %v, want ErrSingular", err)
			}
		})
	}
}

func TestHomographyApplyPerspective(t *testing.T) {
	// A keystone quad yields a genuinely projective mapping (h7 nonzero),
	// exercising the perspective division.
	src := Quad{{20, 0}, {80, 0}, {100, 100}, {0, 100}}
	dst := Rect{Width: 200, Height: 200}.Corners()
	h, err := EstimateHomography(src, dst)
	if err != nil {
		t.Fatalf("EstimateHomography error: %v", err)
	}
	if h[7] == 0 {
		t.Fatal("expected a non-affine homography for this quad")
	}
	for i := range src {
		if got := h.Apply(src[i]); !vecClose(got, dst[i], 1e-6) {
			t.Errorf("corner %d mapped to (%v, %v)", i, got.X, got.Y)
		}
	}
}

func TestRectCorners(t *testing.T) {
	q := Rect{X: 1, Y: 2, Width: 10, Height: 20}.Corners()
	want := Quad{{1, 2}, {11, 2}, {11, 22}, {1, 22}}
	if q != want {
		t.Errorf("Corners = %v, want %v", q, want)
	}
}
