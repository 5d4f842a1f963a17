package metrics

import (
	"math"

	"github.com/san-kum/jumpviz/internal/motion"
)

// DefaultLiftoff is the height a foot must rise above its first sample to
// count as airborne.
const DefaultLiftoff = 0.02

// PeakSpeed is the largest speed of one marker.
type PeakSpeed struct {
	marker motion.Marker
	peak   float64
}

func NewPeakSpeed(m motion.Marker) *PeakSpeed {
	return &PeakSpeed{marker: m}
}

func (p *PeakSpeed) Name() string { return "peak_speed_" + p.marker.String() }

func (p *PeakSpeed) Observe(s Snapshot) {
	v := s.Markers[p.marker]
	p.peak = math.Max(p.peak, math.Hypot(v.VX, v.VY))
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

// ApexHeight is the highest rise of a marker above its first sample.
type ApexHeight struct {
	marker  motion.Marker
	start   float64
	apex    float64
	samples int
}

func NewApexHeight(m motion.Marker) *ApexHeight {
	return &ApexHeight{marker: m}
}

func (a *ApexHeight) Name() string { return "apex_height_" + a.marker.String() }

func (a *ApexHeight) Observe(s Snapshot) {
	y := s.Markers[a.marker].Y
	if a.samples == 0 {
		a.start = y
	}
	a.samples++
	a.apex = math.Max(a.apex, y-a.start)
}

func (a *ApexHeight) Value() float64 { return a.apex }

func (a *ApexHeight) Reset() { *a = ApexHeight{marker: a.marker} }

// FlightTime sums the time both feet spend above their starting height plus
// liftoff.
type FlightTime struct {
	liftoff  float64
	startL   float64
	startR   float64
	prevTime float64
	samples  int
	airborne float64
}

func NewFlightTime(liftoff float64) *FlightTime {
	return &FlightTime{liftoff: liftoff}
}

func (f *FlightTime) Name() string { return "flight_time" }

func (f *FlightTime) Observe(s Snapshot) {
	l, r := s.Markers[motion.LeftFoot].Y, s.Markers[motion.RightFoot].Y
	if f.samples == 0 {
		f.startL, f.startR = l, r
	} else if l-f.startL > f.liftoff && r-f.startR > f.liftoff {
		f.airborne += s.Time - f.prevTime
	}
	f.prevTime = s.Time
	f.samples++
}

func (f *FlightTime) Value() float64 { return f.airborne }

func (f *FlightTime) Reset() { *f = FlightTime{liftoff: f.liftoff} }

// Drift is the horizontal range covered by a marker.
type Drift struct {
	marker   motion.Marker
	min, max float64
	samples  int
}

func NewDrift(m motion.Marker) *Drift {
	return &Drift{marker: m}
}

func (d *Drift) Name() string { return "drift_" + d.marker.String() }

func (d *Drift) Observe(s Snapshot) {
	x := s.Markers[d.marker].X
	if d.samples == 0 {
		d.min, d.max = x, x
	}
	d.samples++
	d.min = math.Min(d.min, x)
	d.max = math.Max(d.max, x)
}

func (d *Drift) Value() float64 { return d.max - d.min }

func (d *Drift) Reset() { *d = Drift{marker: d.marker} }
