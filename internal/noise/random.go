package noise

import (
	"math/rand"
	"time"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

const (
	lehmerModulus    = 2147483647 // 2^31 - 1
	lehmerMultiplier = 16807
)

// lehmer is the Park-Miller minimal standard generator.
type lehmer struct {
	state int64
}

// NewSeededSource returns a reproducible Source for seed. Every seed is
// accepted: residues that would park the generator at zero are shifted
// into its valid state range.
func NewSeededSource(seed int64) Source {
	s := seed % lehmerModulus
	if s < 0 {
		s += lehmerModulus
	}
	if s == 0 {
		s = lehmerModulus - 1
	}
	return &lehmer{state: s}
}

func (l *lehmer) Float64() float64 {
	l.state = l.state * lehmerMultiplier % lehmerModulus
	return float64(l.state-1) / (lehmerModulus - 1)
}

// NewEntropySource returns a time-seeded Source for unseeded fields.
func NewEntropySource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Seed is a convenience for filling Config.Seed.
func Seed(v int64) *int64 {
	return &v
}
