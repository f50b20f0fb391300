package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using math/rand.
type randomRoller struct {
	// rng is nil for the shared source.
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller.
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// NewSeededRoller creates a deterministic roller for reproducible rolls.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.New("invalid dice count")
	}
	if size < 1 {
		return nil, errors.New("invalid die size")
	}

	samples := make([]int, count)
	for i := range samples {
		samples[i] = r.intn(size) + 1
	}
	return samples, nil
}

func (r *randomRoller) intn(n int) int {
	if r.rng != nil {
		return r.rng.Intn(n)
	}
	return rand.Intn(n)
}
