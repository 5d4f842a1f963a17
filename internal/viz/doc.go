// Package viz replays jump recordings in the terminal.
//
// The player is a Bubble Tea program drawing the stick figure on a Braille
// canvas:
//
//   - [Player]: playback model with pause, stepping and looping
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per character
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart
//	[ ]   - Step one frame back/forward
//	V     - Toggle velocity arrows
//	C     - Toggle the timer between time and chest x-position
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	S     - Save an SVG snapshot of the canvas
//	?     - Show help overlay
package viz
