package motion

import (
	"fmt"
	"strings"
)

// Marker identifies a body landmark. The numeric value is the row index in
// position and velocity matrices and n-1 in marker_<n>.txt.
type Marker int

const (
	Chest Marker = iota
	Stomach
	LeftKnee
	RightKnee
	LeftFoot
	RightFoot
)

const NumMarkers = 6

// StickFigurePointCount is the length of the stick-figure traversal.
const StickFigurePointCount = 7

// StickFigure is the drawing order of the stick figure, foot to foot through
// the torso. Stomach is visited twice.
var StickFigure = [StickFigurePointCount]Marker{
	LeftFoot, LeftKnee, Stomach, Chest, Stomach, RightKnee, RightFoot,
}

var markerNames = [NumMarkers]string{
	"chest", "stomach", "left_knee", "right_knee", "left_foot", "right_foot",
}

func (m Marker) String() string {
	if !m.Valid() {
		return fmt.Sprintf("marker(%d)", int(m))
	}
	return markerNames[m]
}

func (m Marker) Valid() bool {
	return m >= Chest && m <= RightFoot
}

// FileName returns the data file holding this marker.
func (m Marker) FileName() string {
	return fmt.Sprintf("marker_%d.txt", int(m)+1)
}

// Markers returns all markers in row order.
func Markers() []Marker {
	return []Marker{Chest, Stomach, LeftKnee, RightKnee, LeftFoot, RightFoot}
}

// ParseMarker accepts names like "chest", "left-knee" or "LeftKnee".
func ParseMarker(s string) (Marker, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for i, name := range markerNames {
		if strings.ReplaceAll(name, "_", "") == key {
			return Marker(i), nil
		}
	}
	return 0, fmt.Errorf("unknown marker: %q", s)
}
