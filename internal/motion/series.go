package motion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/kinematics"
)

// Axis selects a coordinate of the recording plane.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "y", "Y":
		return Y, nil
	}
	return X, fmt.Errorf("unknown axis: %q (want x or y)", s)
}

// Sample is one marker's kinematic state at one frame.
type Sample struct {
	X, Y   float64
	VX, VY float64
}

// Series is the immutable marker recording of one (condition, jump type).
type Series struct {
	key  Key
	time []float64
	posX *mat.Dense
	posY *mat.Dense
	velX *mat.Dense
	velY *mat.Dense
}

// NewSeries copies time and positions and derives velocities. posX and posY
// must be NumMarkers x len(time).
func NewSeries(key Key, time []float64, posX, posY mat.Matrix) (*Series, error) {
	for _, p := range []struct {
		name string
		m    mat.Matrix
	}{{"x", posX}, {"y", posY}} {
		r, c := p.m.Dims()
		if r != NumMarkers || c != len(time) {
			return nil, fmt.Errorf("%s position %s is %dx%d, want %dx%d: %w",
				key, p.name, r, c, NumMarkers, len(time), ErrShape)
		}
	}

	if err := checkFinite(key, time, posX, posY); err != nil {
		return nil, err
	}

	s := &Series{
		key:  key,
		time: append([]float64(nil), time...),
		posX: mat.DenseCopyOf(posX),
		posY: mat.DenseCopyOf(posY),
	}
	if err := s.derive(); err != nil {
		return nil, err
	}
	return s, nil
}

func checkFinite(key Key, time []float64, posX, posY mat.Matrix) error {
	for i, t := range time {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%s time sample %d is %v: %w", key, i, t, ErrNonFinite)
		}
	}
	for _, p := range []struct {
		name string
		m    mat.Matrix
	}{{"x", posX}, {"y", posY}} {
		for m := 0; m < NumMarkers; m++ {
			for i := range time {
				if v := p.m.At(m, i); math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%s %s %s sample %d is %v: %w", key, Marker(m), p.name, i, v, ErrNonFinite)
				}
			}
		}
	}
	return nil
}

func (s *Series) derive() error {
	vx, err := kinematics.GradientRows(s.posX, s.time)
	if err != nil {
		return fmt.Errorf("%s velocity x: %w", s.key, err)
	}
	vy, err := kinematics.GradientRows(s.posY, s.time)
	if err != nil {
		return fmt.Errorf("%s velocity y: %w", s.key, err)
	}
	s.velX, s.velY = vx, vy
	return nil
}

func (s *Series) Key() Key { return s.key }

func (s *Series) Condition() Condition { return s.key.Condition }

func (s *Series) JumpType() JumpType { return s.key.JumpType }

// Len returns the number of samples N.
func (s *Series) Len() int { return len(s.time) }

// Time returns a copy of the shared time axis.
func (s *Series) Time() []float64 {
	return append([]float64(nil), s.time...)
}

func (s *Series) TimeAt(frame int) float64 { return s.time[frame] }

// Duration is the span between the first and last sample.
func (s *Series) Duration() float64 {
	return s.time[len(s.time)-1] - s.time[0]
}

// Interval is the spacing of the first two samples.
func (s *Series) Interval() float64 {
	return s.time[1] - s.time[0]
}

// PositionX returns a copy of the 6 x N x-position matrix.
func (s *Series) PositionX() *mat.Dense { return mat.DenseCopyOf(s.posX) }

func (s *Series) PositionY() *mat.Dense { return mat.DenseCopyOf(s.posY) }

func (s *Series) VelocityX() *mat.Dense { return mat.DenseCopyOf(s.velX) }

func (s *Series) VelocityY() *mat.Dense { return mat.DenseCopyOf(s.velY) }

// Position returns a copy of one marker's trajectory along axis.
func (s *Series) Position(m Marker, axis Axis) []float64 {
	src := s.posX
	if axis == Y {
		src = s.posY
	}
	return mat.Row(nil, int(m), src)
}

// Velocity returns a copy of one marker's velocity along axis.
func (s *Series) Velocity(m Marker, axis Axis) []float64 {
	src := s.velX
	if axis == Y {
		src = s.velY
	}
	return mat.Row(nil, int(m), src)
}

// At returns marker m at frame. The caller guarantees frame is in range.
func (s *Series) At(m Marker, frame int) Sample {
	r := int(m)
	return Sample{
		X:  s.posX.At(r, frame),
		Y:  s.posY.At(r, frame),
		VX: s.velX.At(r, frame),
		VY: s.velY.At(r, frame),
	}
}

// Window returns the samples [from, to) as a new Series. Velocities are
// re-derived from the windowed positions, so edge samples use one-sided
// differences of the window rather than the parent's central differences.
func (s *Series) Window(from, to int) (*Series, error) {
	if from < 0 || from >= s.Len() {
		return nil, &IndexError{Index: from, Len: s.Len()}
	}
	if to <= from || to > s.Len() {
		return nil, &WindowError{From: from, To: to, Len: s.Len()}
	}
	return NewSeries(s.key, s.time[from:to],
		s.posX.Slice(0, NumMarkers, from, to),
		s.posY.Slice(0, NumMarkers, from, to))
}
