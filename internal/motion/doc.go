// Package motion holds the marker trajectory model for recorded jumps.
//
// A [Series] groups the six body markers of one (condition, jump type)
// recording:
//
//   - [Marker]: fixed marker roles, Chest through RightFoot
//   - [Series]: shared time axis, 6 x N position and velocity matrices
//   - [StickFigurePoints]: the 7-point stick figure for a single frame
//
// Series values are immutable. Velocities are derived from positions when a
// Series is built and re-derived whenever a new Series is produced from it.
package motion
