// Package counter provides the mutable accumulator that feeds values
// into the style engine. A Counter is the collaborator, not the engine:
// it holds and moves an integer, and the caller hands the current value
// to a style.Definition for formatting.
package counter

import "math"

// Counter is a named integer accumulator. Steps may be arbitrarily
// large in either direction; the value saturates at the int64 limits
// rather than wrapping. A Counter is single-writer: unsynchronized
// concurrent increments are undefined.
type Counter struct {
	name  string
	value int64
}

// New returns a counter starting at 0.
func New(name string) *Counter {
	return &Counter{name: name}
}

// NewAt returns a counter starting at value.
func NewAt(name string, value int64) *Counter {
	return &Counter{name: name, value: value}
}

// Name returns the counter's (informational) name.
func (c *Counter) Name() string { return c.name }

// Value returns the current value.
func (c *Counter) Value() int64 { return c.value }

// Increment moves the value by delta, which may be negative. On
// overflow the value saturates at math.MaxInt64 or math.MinInt64.
func (c *Counter) Increment(delta int64) {
	sum := c.value + delta
	switch {
	case delta > 0 && sum < c.value:
		sum = math.MaxInt64
	case delta < 0 && sum > c.value:
		sum = math.MinInt64
	}
	c.value = sum
}

// Reset returns the value to 0.
func (c *Counter) Reset() {
	c.value = 0
}
