package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Contains_Unbounded(t *testing.T) {
	r := All()

	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(math.MinInt64))
	assert.True(t, r.Contains(math.MaxInt64))
}

func TestRange_Contains_AtLeast(t *testing.T) {
	r := AtLeast(1)

	assert.False(t, r.Contains(0), "below the lower bound")
	assert.True(t, r.Contains(1), "lower bound is inclusive")
	assert.True(t, r.Contains(math.MaxInt64))
}

func TestRange_Contains_AtMost(t *testing.T) {
	r := AtMost(-1)

	assert.True(t, r.Contains(math.MinInt64))
	assert.True(t, r.Contains(-1), "upper bound is inclusive")
	assert.False(t, r.Contains(0), "above the upper bound")
}

func TestRange_Contains_Bounded(t *testing.T) {
	r := Bounded(1, 3999)

	assert.False(t, r.Contains(0))
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3999))
	assert.False(t, r.Contains(4000))
}

func TestRange_Contains_EmptyWhenMinExceedsMax(t *testing.T) {
	r := Bounded(10, 1)

	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Contains(10))
}

func TestRange_Bounds(t *testing.T) {
	min, ok := Bounded(1, 9).Min()
	assert.True(t, ok)
	assert.Equal(t, int64(1), min)

	max, ok := Bounded(1, 9).Max()
	assert.True(t, ok)
	assert.Equal(t, int64(9), max)

	_, ok = All().Min()
	assert.False(t, ok)
	_, ok = All().Max()
	assert.False(t, ok)
}

func TestRange_ContainsMagnitude_NegativeUpperBound(t *testing.T) {
	// A range entirely below zero admits no magnitude.
	r := AtMost(-1)

	assert.False(t, r.containsMagnitude(0))
	assert.False(t, r.containsMagnitude(5))
}

func TestRange_ContainsMagnitude_NonPositiveLowerBound(t *testing.T) {
	// A lower bound at or below zero cannot exclude a magnitude.
	assert.True(t, AtLeast(0).containsMagnitude(0))
	assert.True(t, AtLeast(math.MinInt64).containsMagnitude(0))
	assert.False(t, AtLeast(2).containsMagnitude(1))
}

func TestRange_ContainsMagnitude_MinInt64Magnitude(t *testing.T) {
	// |math.MinInt64| = 2^63 exceeds every representable upper bound.
	m := magnitude(math.MinInt64)

	assert.Equal(t, uint64(1)<<63, m)
	assert.False(t, Bounded(0, math.MaxInt64).containsMagnitude(m))
	assert.True(t, All().containsMagnitude(m))
	assert.True(t, AtLeast(1).containsMagnitude(m))
}
