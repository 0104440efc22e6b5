package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandIsReproducibleForSameSeed(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(-10, 25), b.IntBetween(-10, 25))
		assert.Equal(t, a.FloatBetween(0, 1), b.FloatBetween(0, 1))
	}
}

func TestIntBetweenIsInclusive(t *testing.T) {
	r := NewRand(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.True(t, seen[1], "lower bound never drawn")
	assert.True(t, seen[5], "upper bound never drawn")
}

func TestTimeInDayStaysWithinDay(t *testing.T) {
	r := NewRand(7)
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		ts := r.TimeInDay(day)
		assert.False(t, ts.Before(day))
		assert.True(t, ts.Before(day.AddDate(0, 0, 1)))
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.346))
	assert.Equal(t, 12.34, Round2(12.342))
	assert.Equal(t, -2.5, Round2(-2.5))
	assert.Equal(t, 0.0, Round2(0))
}
