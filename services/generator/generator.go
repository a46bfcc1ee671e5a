package generator

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
)

// DefaultRange is the upper bound used when the caller gives none.
const DefaultRange = math.MaxInt32

// DefaultGeneratorService draws from an unseeded source; results are not
// reproducible.
type DefaultGeneratorService struct {
	// NewSource returns the source used by a single Randoms call.
	// Nil means a freshly seeded PCG source.
	NewSource func() rand.Source
}

// NewGUID returns a random (version 4) UUID.
func (s *DefaultGeneratorService) NewGUID() uuid.UUID {
	return uuid.New()
}

// Randoms returns count values in [0, upper). A non-positive count yields an
// empty slice. upper must be positive.
func (s *DefaultGeneratorService) Randoms(count, upper int) []int {
	if count <= 0 {
		return []int{}
	}

	r := rand.New(s.source())
	out := make([]int, count)
	for i := range out {
		out[i] = r.IntN(upper)
	}
	return out
}

func (s *DefaultGeneratorService) source() rand.Source {
	if s.NewSource != nil {
		return s.NewSource()
	}
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
