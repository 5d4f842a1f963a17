package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/jumpviz/internal/metrics"
	"github.com/san-kum/jumpviz/internal/motion"
)

type MarkerData struct {
	Name string    `json:"name"`
	File string    `json:"file"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	VX   []float64 `json:"vx"`
	VY   []float64 `json:"vy"`
}

type ExportData struct {
	Condition string             `json:"condition"`
	JumpType  string             `json:"jump_type"`
	Samples   int                `json:"samples"`
	Duration  float64            `json:"duration"`
	Times     []float64          `json:"times"`
	Markers   []MarkerData       `json:"markers"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newExportData(s *motion.Series) ExportData {
	data := ExportData{
		Condition: string(s.Condition()),
		JumpType:  string(s.JumpType()),
		Samples:   s.Len(),
		Duration:  s.Duration(),
		Times:     s.Time(),
		Markers:   make([]MarkerData, 0, motion.NumMarkers),
		Metrics:   metrics.Evaluate(s, metrics.Default()...),
	}
	for _, m := range motion.Markers() {
		data.Markers = append(data.Markers, MarkerData{
			Name: m.String(),
			File: m.FileName(),
			X:    s.Position(m, motion.X),
			Y:    s.Position(m, motion.Y),
			VX:   s.Velocity(m, motion.X),
			VY:   s.Velocity(m, motion.Y),
		})
	}
	return data
}

// JSON writes s with derived velocities and metrics as indented JSON.
func JSON(w io.Writer, s *motion.Series) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(s))
}
