package random

import (
	crand "crypto/rand"
	"encoding/binary"

	apperrors "github.com/louisbranch/rollkit/errors"
)

// NewSeed generates a random seed using crypto/rand.
//
// It produces high-entropy seeds suitable for initializing the deterministic
// source returned by NewSeeded.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeRandomSeedFailure, "read random seed", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
