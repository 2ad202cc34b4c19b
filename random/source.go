// Package random provides the random-number contract consumed by dice
// resolution.
//
// A Source supplies uniformly distributed integers. A Provider hands a
// Source out under a scoped lock so that a shared generator never sees
// interleaved draws from concurrent resolutions.
package random

import (
	"sync"

	apperrors "github.com/louisbranch/rollkit/errors"
)

// Source supplies uniformly distributed integers.
type Source interface {
	// Next returns a uniformly distributed integer in [0, bound).
	// A bound of zero or less fails with CodeRandomInvalidBound.
	Next(bound int) (int, error)
}

// Provider hands out a Source for the duration of one roll resolution.
type Provider interface {
	// Acquire locks the source for a single resolution. The release
	// function must be called when the resolution finishes, on every exit
	// path; calling it more than once is a no-op.
	Acquire() (Source, func(), error)
}

// locked serializes access to a shared Source.
type locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src in a Provider that lets at most one resolution hold
// the source at a time. Acquire blocks until the source is free.
func NewLocked(src Source) Provider {
	return &locked{src: src}
}

// Acquire implements Provider.
func (l *locked) Acquire() (Source, func(), error) {
	if l.src == nil {
		return nil, nil, apperrors.New(apperrors.CodeRandomSourceFailure, "locked provider has no source")
	}

	l.mu.Lock()
	var once sync.Once
	release := func() {
		once.Do(l.mu.Unlock)
	}
	return l.src, release, nil
}
