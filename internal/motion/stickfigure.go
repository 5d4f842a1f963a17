package motion

// Frame holds the stick-figure points for one sample, ordered as StickFigure.
type Frame struct {
	Index int
	Time  float64
	X     [StickFigurePointCount]float64
	Y     [StickFigurePointCount]float64
	VX    [StickFigurePointCount]float64
	VY    [StickFigurePointCount]float64
}

// StickFigurePoints selects the stick-figure traversal of s at frame.
func StickFigurePoints(s *Series, frame int) (Frame, error) {
	if frame < 0 || frame >= s.Len() {
		return Frame{}, &IndexError{Index: frame, Len: s.Len()}
	}

	f := Frame{Index: frame, Time: s.time[frame]}
	for i, m := range StickFigure {
		p := s.At(m, frame)
		f.X[i], f.Y[i] = p.X, p.Y
		f.VX[i], f.VY[i] = p.VX, p.VY
	}
	return f, nil
}

// Frames returns the stick figure for every sample of s.
func Frames(s *Series) []Frame {
	out := make([]Frame, s.Len())
	for i := range out {
		out[i], _ = StickFigurePoints(s, i)
	}
	return out
}
