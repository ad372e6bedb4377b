// Package anim provides the pure scheduling contract between the math
// engine and whatever render loop hosts it. Nothing here owns a timer:
// the host measures elapsed time and asks where progress should be.
package anim

import "time"

// DefaultDuration is the eased transition length used when stepping
// between animation phases.
const DefaultDuration = 900 * time.Millisecond

// ProgressAt returns the progress value elapsed time into an eased
// transition from start to target. The endpoints are exact: at or before
// zero elapsed it returns start, at or past duration it returns target.
// A non-positive duration snaps to target immediately.
func ProgressAt(elapsed, duration time.Duration, start, target float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return start
	}
	u := easeInOutCubic(float64(elapsed) / float64(duration))
	return start + (target-start)*u
}

// Clamp01 clamps x to the unit interval.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// easeInOutCubic maps [0, 1] onto itself, accelerating through the first
// half and decelerating through the second. Fixed at 0, 0.5, and 1.
func easeInOutCubic(u float64) float64 {
	if u < 0.5 {
		return 4 * u * u * u
	}
	v := 2*u - 2
	return 1 + v*v*v/2
}
