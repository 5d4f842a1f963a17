// Package render draws stick-figure frames of jump recordings with gonum/plot.
//
// A frame shows the floor line, the stick-figure outline, its markers, an
// optional velocity arrow per marker and a timer label. Images are written
// in the format implied by the file extension (png, svg, pdf, ...).
package render
