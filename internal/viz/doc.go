// Package viz renders curves in the terminal.
//
// [Plot] draws sampled points as an ASCII chart. [RunTuner] starts an
// interactive Bubble Tea program for adjusting a curve and watching its
// shape and stats change.
//
// # Key Bindings
//
//	j/k   - Select parameter
//	h/l   - Decrease/increase selected parameter
//	r     - Toggle reverse
//	p     - Cycle search policy
//	t     - Cycle color theme
//	q     - Quit
package viz
