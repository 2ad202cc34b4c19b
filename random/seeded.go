package random

import (
	"math/rand"
	"strconv"

	apperrors "github.com/louisbranch/rollkit/errors"
)

// seeded is a Source backed by a deterministic math/rand generator.
type seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a Source backed by math/rand.
//
// # Determinism
//
// Given the same seed, the source produces the same draw sequence. The
// sequence matches rand.New(rand.NewSource(seed)).Intn(bound) call for call,
// so callers can reproduce any resolution from its seed.
//
// The returned Source is not safe for concurrent use; wrap it in NewLocked
// when sharing it across resolutions.
func NewSeeded(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly distributed integer in [0, bound).
func (s *seeded) Next(bound int) (int, error) {
	if bound <= 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomInvalidBound,
			"next bound must be positive",
			map[string]string{"Bound": strconv.Itoa(bound)})
	}
	return s.rng.Intn(bound), nil
}
