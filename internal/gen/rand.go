package gen

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the injectable randomness source used by all generators.
// A fixed seed makes a whole generation run reproducible.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a seeded source. Seed 0 means "use the clock".
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func (r *Rand) IntBetween(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max).
func (r *Rand) FloatBetween(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Index returns a uniform index in [0, n).
func (r *Rand) Index(n int) int {
	return r.rng.Intn(n)
}

// Choice picks one string from a non-empty slice.
func (r *Rand) Choice(options []string) string {
	return options[r.rng.Intn(len(options))]
}

// TimeInDay places a random wall-clock time within the given day.
// day must be midnight; the result keeps the date and randomizes
// hour, minute and second.
func (r *Rand) TimeInDay(day time.Time) time.Time {
	return day.Add(time.Duration(r.IntBetween(0, 23))*time.Hour +
		time.Duration(r.IntBetween(0, 59))*time.Minute +
		time.Duration(r.IntBetween(0, 59))*time.Second)
}

// Round2 rounds a money amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
