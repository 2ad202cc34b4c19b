// Package randomtest provides scripted random sources for deterministic
// tests.
package randomtest

import (
	"strconv"

	apperrors "github.com/louisbranch/rollkit/errors"
	"github.com/louisbranch/rollkit/random"
)

// Script is a Source that replays a fixed sequence of draws.
//
// Each scripted value must be valid for the bound it is drawn against;
// drawing past the end of the script or scripting an out-of-range value
// fails with CodeRandomSourceFailure so tests catch miscounted draws.
type Script struct {
	draws []int
	next  int
}

// NewScript returns a Source that yields the given draws in order.
func NewScript(draws ...int) *Script {
	return &Script{draws: draws}
}

// Next returns the next scripted draw.
func (s *Script) Next(bound int) (int, error) {
	if bound <= 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomInvalidBound,
			"next bound must be positive",
			map[string]string{"Bound": strconv.Itoa(bound)})
	}
	if s.next >= len(s.draws) {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomSourceFailure,
			"script exhausted",
			map[string]string{"Draws": strconv.Itoa(len(s.draws))})
	}

	value := s.draws[s.next]
	s.next++
	if value < 0 || value >= bound {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomSourceFailure,
			"scripted draw out of range",
			map[string]string{"Draw": strconv.Itoa(value), "Bound": strconv.Itoa(bound)})
	}
	return value, nil
}

// Drawn returns how many scripted values have been consumed.
func (s *Script) Drawn() int {
	return s.next
}

// Fixed is a Source that returns the same draw on every call.
type Fixed struct {
	value int
}

// NewFixed returns a Source that always yields value.
func NewFixed(value int) *Fixed {
	return &Fixed{value: value}
}

// Next returns the fixed draw, reduced into range for small bounds.
func (f *Fixed) Next(bound int) (int, error) {
	if bound <= 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomInvalidBound,
			"next bound must be positive",
			map[string]string{"Bound": strconv.Itoa(bound)})
	}
	return f.value % bound, nil
}

// Provider wraps a Source and records acquire/release pairs.
type Provider struct {
	// Source is handed out by Acquire. Required unless AcquireErr is set.
	Source random.Source
	// AcquireErr, when set, fails every Acquire call.
	AcquireErr error

	acquires int
	releases int
}

// Acquire implements random.Provider.
func (p *Provider) Acquire() (random.Source, func(), error) {
	if p.AcquireErr != nil {
		return nil, nil, p.AcquireErr
	}

	p.acquires++
	released := false
	release := func() {
		if released {
			return
		}
		released = true
		p.releases++
	}
	return p.Source, release, nil
}

// Acquires returns how many times the source was acquired.
func (p *Provider) Acquires() int {
	return p.acquires
}

// Releases returns how many times the source was released.
func (p *Provider) Releases() int {
	return p.releases
}
