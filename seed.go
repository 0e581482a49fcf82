package fractals

import (
	"math/rand"
	"strconv"
	"time"
)

// Seed holds the seed of the random source used by the fern sampler.
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make seeds a little shorter)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	if hexSeed != "" {
		return ParseSeed(hexSeed)
	}
	return Seed{intSeed: time.Now().UnixNano() - epoch2020}, nil
}

// ParseSeed reads a seed printed by Seed.String.
func ParseSeed(hexSeed string) (Seed, error) {
	v, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return Seed{}, err
	}
	return Seed{intSeed: v}, nil
}

// NewSeed wraps a fixed value, handy in tests.
func NewSeed(v int64) Seed {
	return Seed{intSeed: v}
}

// Int64 returns the rand initialization seed
func (s Seed) Int64() int64 {
	return s.intSeed
}

// String returns the seed in hex so it can be passed back with --seed.
func (s Seed) String() string {
	return strconv.FormatInt(s.intSeed, 16)
}

// Rand returns a new random source started from the seed. Two sources from
// the same seed produce the same sequence.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}
