package ripple

import "errors"

// ErrSingular is returned when a matrix has no inverse. This is an expected,
// recoverable runtime condition: the zone quadrilateral can be dragged into a
// degenerate shape at any time.
var ErrSingular = errors.New("ripple: singular matrix")

// ErrDimension is returned on a matrix/vector size mismatch. Engine-internal
// usage is fixed at 8×8, so hitting this indicates a programming error.
var ErrDimension = errors.New("ripple: dimension mismatch")

// Matrix is a dense square matrix of float64 values, row-major.
type Matrix [][]float64

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Invert returns the inverse of m computed by Gauss-Jordan elimination, or
// ErrSingular if no inverse exists. Pivoting swaps in any row with a nonzero
// entry in the current column; a column with no nonzero pivot means the
// matrix is singular. m is not modified.
func (m Matrix) Invert() (Matrix, error) {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return nil, ErrDimension
		}
	}

	// Work on an augmented copy [m | I]; the right half becomes the inverse.
	work := make([][]float64, n)
	for i := range work {
		work[i] = make([]float64, 2*n)
		copy(work[i], m[i])
		work[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Find a usable pivot row at or below the diagonal.
		pivot := -1
		for r := col; r < n; r++ {
			if work[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingular
		}
		if pivot != col {
			work[col], work[pivot] = work[pivot], work[col]
		}

		// Normalize the pivot row.
		div := work[col][col]
		for c := 0; c < 2*n; c++ {
			work[col][c] /= div
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := work[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				work[r][c] -= factor * work[col][c]
			}
		}
	}

	inv := NewMatrix(n)
	for i := range inv {
		copy(inv[i], work[i][n:])
	}
	return inv, nil
}

// MulVec returns the matrix-vector product m·v, or ErrDimension if v's length
// does not match the matrix size.
func (m Matrix) MulVec(v []float64) ([]float64, error) {
	n := len(m)
	if len(v) != n {
		return nil, ErrDimension
	}
	out := make([]float64, n)
	for i, row := range m {
		if len(row) != n {
			return nil, ErrDimension
		}
		var sum float64
		for j, a := range row {
			sum += a * v[j]
		}
		out[i] = sum
	}
	return out, nil
}
