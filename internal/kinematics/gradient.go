package kinematics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateTime checks that t can serve as a differentiation axis.
func ValidateTime(t []float64) error {
	if len(t) < 2 {
		return &ComputeError{Op: "validate time", Index: -1, Wrapped: ErrTooFewSamples}
	}
	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) {
			return &ComputeError{Op: "validate time", Index: i, Wrapped: ErrNotMonotonic}
		}
	}
	return nil
}

// Gradient returns dv/dt sampled at every element of t.
func Gradient(v, t []float64) ([]float64, error) {
	if len(v) != len(t) {
		return nil, &ComputeError{Op: "gradient", Index: -1, Wrapped: ErrLengthMismatch}
	}
	if err := ValidateTime(t); err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	gradientInto(out, v, t)
	return out, nil
}

// gradientInto assumes t is already validated and len(dst) == len(v) == len(t).
func gradientInto(dst, v, t []float64) {
	n := len(v)
	dst[0] = (v[1] - v[0]) / (t[1] - t[0])
	for i := 1; i < n-1; i++ {
		dst[i] = (v[i+1] - v[i-1]) / (t[i+1] - t[i-1])
	}
	dst[n-1] = (v[n-1] - v[n-2]) / (t[n-1] - t[n-2])
}

// GradientRows differentiates every row of m against t. Rows are independent
// signals sharing the same time axis.
func GradientRows(m mat.Matrix, t []float64) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if cols != len(t) {
		return nil, &ComputeError{Op: "gradient rows", Index: -1, Wrapped: ErrLengthMismatch}
	}
	if err := ValidateTime(t); err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for r := 0; r < rows; r++ {
		mat.Row(row, r, m)
		gradientInto(out.RawRowView(r), row, t)
	}
	return out, nil
}

// Speed returns the element-wise magnitude of (vx, vy).
func Speed(vx, vy []float64) []float64 {
	n := len(vx)
	if len(vy) < n {
		n = len(vy)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Hypot(vx[i], vy[i])
	}
	return out
}
