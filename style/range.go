package style

import "math"

// Range is an inclusive integer interval with optionally absent bounds.
// The zero value is unbounded on both sides. Range is a value type:
// copy it freely.
type Range struct {
	min, max       int64
	hasMin, hasMax bool
}

// All returns the range covering every integer.
func All() Range {
	return Range{}
}

// AtLeast returns the range [min, +inf).
func AtLeast(min int64) Range {
	return Range{min: min, hasMin: true}
}

// AtMost returns the range (-inf, max].
func AtMost(max int64) Range {
	return Range{max: max, hasMax: true}
}

// Bounded returns the inclusive range [min, max]. A range with
// min > max contains nothing.
func Bounded(min, max int64) Range {
	return Range{min: min, max: max, hasMin: true, hasMax: true}
}

// Min returns the lower bound and whether one exists.
func (r Range) Min() (int64, bool) {
	return r.min, r.hasMin
}

// Max returns the upper bound and whether one exists.
func (r Range) Max() (int64, bool) {
	return r.max, r.hasMax
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int64) bool {
	if r.hasMin && v < r.min {
		return false
	}
	if r.hasMax && v > r.max {
		return false
	}
	return true
}

// containsMagnitude is Contains for an unsigned magnitude. Magnitudes
// travel as uint64 so that |math.MinInt64| stays exact; a magnitude
// above math.MaxInt64 exceeds every representable upper bound.
func (r Range) containsMagnitude(m uint64) bool {
	if r.hasMin && r.min > 0 && m < uint64(r.min) {
		return false
	}
	if r.hasMax {
		if r.max < 0 {
			return false
		}
		if m > math.MaxInt64 || m > uint64(r.max) {
			return false
		}
	}
	return true
}
