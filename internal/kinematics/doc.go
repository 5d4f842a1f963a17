// Package kinematics derives velocities from sampled positions.
//
// Derivatives use second-order central differences at interior samples and
// first-order one-sided differences at the two boundary samples:
//
//	v[0]   = (x[1] - x[0]) / (t[1] - t[0])
//	v[i]   = (x[i+1] - x[i-1]) / (t[i+1] - t[i-1])
//	v[N-1] = (x[N-1] - x[N-2]) / (t[N-1] - t[N-2])
//
// The time axis must hold at least two strictly increasing samples; any
// violation is reported as a [*ComputeError].
package kinematics
