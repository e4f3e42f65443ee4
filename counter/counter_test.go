package counter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/numeral/style"
)

func TestCounter_New(t *testing.T) {
	c := New("list-items")

	assert.Equal(t, "list-items", c.Name())
	assert.Equal(t, int64(0), c.Value())
}

func TestCounter_NewAt(t *testing.T) {
	c := NewAt("chapter", 41)

	assert.Equal(t, int64(41), c.Value())
}

func TestCounter_Increment(t *testing.T) {
	c := New("c")

	c.Increment(1)
	c.Increment(1)
	assert.Equal(t, int64(2), c.Value())

	c.Increment(40)
	assert.Equal(t, int64(42), c.Value())

	c.Increment(-100)
	assert.Equal(t, int64(-58), c.Value())
}

func TestCounter_Increment_SaturatesAtMax(t *testing.T) {
	c := NewAt("c", math.MaxInt64-1)

	c.Increment(10)
	assert.Equal(t, int64(math.MaxInt64), c.Value())

	c.Increment(1)
	assert.Equal(t, int64(math.MaxInt64), c.Value(), "stays pinned")

	c.Increment(-1)
	assert.Equal(t, int64(math.MaxInt64-1), c.Value(), "still moves back down")
}

func TestCounter_Increment_SaturatesAtMin(t *testing.T) {
	c := NewAt("c", math.MinInt64+1)

	c.Increment(-10)
	assert.Equal(t, int64(math.MinInt64), c.Value())

	c.Increment(math.MinInt64)
	assert.Equal(t, int64(math.MinInt64), c.Value())
}

func TestCounter_FeedsStyleEngine(t *testing.T) {
	reg := style.NewRegistry()
	roman := reg.Lookup("upper-roman")
	c := New("chapter")

	var markers []string
	for i := 0; i < 4; i++ {
		c.Increment(1)
		markers = append(markers, roman.MarkerContent(reg, c.Value()))
	}
	assert.Equal(t, []string{"I. ", "II. ", "III. ", "IV. "}, markers)
}

func TestCounter_Reset(t *testing.T) {
	c := NewAt("c", 99)

	c.Reset()
	assert.Equal(t, int64(0), c.Value())

	c.Increment(3)
	assert.Equal(t, int64(3), c.Value())
}
