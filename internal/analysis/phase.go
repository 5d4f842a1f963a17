package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/jumpviz/internal/motion"
)

type Point struct{ X, Y float64 }

// PhasePortrait2D holds one marker's position against its velocity on a
// single axis.
type PhasePortrait2D struct {
	Marker motion.Marker
	Axis   motion.Axis
	Points []Point
}

// GeneratePhasePortrait pairs every sample's position with its derived
// velocity.
func GeneratePhasePortrait(s *motion.Series, m motion.Marker, axis motion.Axis) *PhasePortrait2D {
	if s == nil || !m.Valid() {
		return nil
	}

	pos := s.Position(m, axis)
	vel := s.Velocity(m, axis)
	portrait := &PhasePortrait2D{
		Marker: m,
		Axis:   axis,
		Points: make([]Point, len(pos)),
	}
	for i := range pos {
		portrait.Points[i] = Point{X: pos[i], Y: vel[i]}
	}
	return portrait
}

// Bounds returns the extent of the portrait.
func (p *PhasePortrait2D) Bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = p.Points[0].X, p.Points[0].X
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, maxX, minY, maxY
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX, minY, maxY := portrait.Bounds()

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// zero velocity marks the turning points
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Crossing is a moment where a marker passes a level on one axis.
type Crossing struct {
	Frame  int
	Time   float64
	Rising bool
}

// Crossings records every sample where the marker's position crosses level,
// with the time linearly interpolated between the bracketing samples. For a
// foot on the y axis these are the take-off (rising) and landing events.
func Crossings(s *motion.Series, m motion.Marker, axis motion.Axis, level float64) []Crossing {
	if s == nil || !m.Valid() {
		return nil
	}

	pos := s.Position(m, axis)
	t := s.Time()
	var out []Crossing
	for i := 1; i < len(pos); i++ {
		prev, curr := pos[i-1], pos[i]
		rising := prev < level && curr >= level
		falling := prev >= level && curr < level
		if !rising && !falling {
			continue
		}

		frac := (level - prev) / (curr - prev)
		if math.IsNaN(frac) || math.IsInf(frac, 0) {
			frac = 0.5
		}
		out = append(out, Crossing{
			Frame:  i,
			Time:   t[i-1] + frac*(t[i]-t[i-1]),
			Rising: rising,
		})
	}
	return out
}
