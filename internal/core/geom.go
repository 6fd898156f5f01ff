// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Point is an integer grid position in (row, column) order.
// It is comparable, so it can be used directly as a map/set key.
type Point struct {
	Y, X int
}

// Delta is a per-tick velocity. Legal values are axis-aligned unit vectors
// and the zero delta.
type Delta struct {
	DY, DX int
}

// Zero reports whether the delta has no movement component.
func (d Delta) Zero() bool {
	return d.DY == 0 && d.DX == 0
}

// Reverse returns the opposite delta.
func (d Delta) Reverse() Delta {
	return Delta{DY: -d.DY, DX: -d.DX}
}

// Add returns the point shifted by the given delta.
func (p Point) Add(d Delta) Point {
	return Point{Y: p.Y + d.DY, X: p.X + d.DX}
}

// Cardinal directions in the fixed order used for direction enumeration.
var (
	DirUp    = Delta{DY: -1}
	DirDown  = Delta{DY: 1}
	DirLeft  = Delta{DX: -1}
	DirRight = Delta{DX: 1}
)

// Directions lists the four cardinal deltas in a stable order.
// Callers must not mutate the returned slice.
var Directions = []Delta{DirUp, DirDown, DirLeft, DirRight}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
