package metrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/jumpviz/internal/kinematics"
	"github.com/san-kum/jumpviz/internal/motion"
)

// Snapshot is every marker of a recording at one frame.
type Snapshot struct {
	Frame   int
	Time    float64
	Markers [motion.NumMarkers]motion.Sample
}

// Metric accumulates a scalar over the frames of a recording.
type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

// Snap collects the markers of s at frame. The caller guarantees frame is
// in range.
func Snap(s *motion.Series, frame int) Snapshot {
	snap := Snapshot{Frame: frame, Time: s.TimeAt(frame)}
	for _, m := range motion.Markers() {
		snap.Markers[m] = s.At(m, frame)
	}
	return snap
}

// Evaluate resets each metric, feeds it every frame of s in order and
// returns the values by name.
func Evaluate(s *motion.Series, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < s.Len(); i++ {
		snap := Snap(s, i)
		for _, m := range ms {
			m.Observe(snap)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default returns the jump metrics reported by the CLI.
func Default() []Metric {
	return []Metric{
		NewApexHeight(motion.Chest),
		NewFlightTime(DefaultLiftoff),
		NewDrift(motion.Chest),
		NewPeakSpeed(motion.Chest),
		NewPeakSpeed(motion.LeftFoot),
		NewPeakSpeed(motion.RightFoot),
	}
}

// Names returns the metric names of values in sorted order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PeakSpeeds returns the maximum speed of every marker over the recording.
func PeakSpeeds(s *motion.Series) [motion.NumMarkers]float64 {
	var out [motion.NumMarkers]float64
	for _, m := range motion.Markers() {
		speed := kinematics.Speed(s.Velocity(m, motion.X), s.Velocity(m, motion.Y))
		out[m] = floats.Max(speed)
	}
	return out
}
