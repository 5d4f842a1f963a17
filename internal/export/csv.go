package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/jumpviz/internal/motion"
)

// CSVHeader returns the column names: time, then x, y, vx, vy per marker.
func CSVHeader() []string {
	header := []string{"time"}
	for _, m := range motion.Markers() {
		name := m.String()
		header = append(header, name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	return header
}

// CSV writes one row per sample of s.
func CSV(w io.Writer, s *motion.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader()); err != nil {
		return err
	}

	row := make([]string, 0, 1+4*motion.NumMarkers)
	for i := 0; i < s.Len(); i++ {
		row = append(row[:0], strconv.FormatFloat(s.TimeAt(i), 'f', 6, 64))
		for _, m := range motion.Markers() {
			p := s.At(m, i)
			row = append(row,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.VX, 'f', 6, 64),
				strconv.FormatFloat(p.VY, 'f', 6, 64),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
