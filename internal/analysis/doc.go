// Package analysis provides phase-space views of a recording.
//
//   - [GeneratePhasePortrait]: position against velocity for one marker and axis
//   - [PhasePortraitToASCII]: terminal rendering of a portrait
//   - [Crossings]: level crossings, e.g. take-off and landing of a foot
//
// A vertical jump traces a loop in the (y, vy) plane: the velocity turns
// positive during push-off, passes zero at the apex and goes negative on the
// way down.
//
//	p := analysis.GeneratePhasePortrait(s, motion.Chest, motion.Y)
//	fmt.Print(analysis.PhasePortraitToASCII(p, 60, 20))
package analysis
