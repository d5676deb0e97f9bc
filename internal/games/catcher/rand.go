package catcher

import "math/rand"

// Random draws integers for the spawn policy.
type Random interface {
	// Between returns a uniform integer in [min, max], inclusive at both ends.
	Between(min, max int) int
}

// SeededRandom is a deterministic Random.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [min, max]. Swapped bounds are
// reordered.
func (r *SeededRandom) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}
