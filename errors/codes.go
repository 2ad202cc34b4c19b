// Package errors provides structured error handling for roll resolution.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Construction errors
	CodeDiceNoRandomSource Code = "DICE_NO_RANDOM_SOURCE"

	// Configuration errors
	CodeDiceInvalidFaces          Code = "DICE_INVALID_FACES"
	CodeDiceInvalidDiceCount      Code = "DICE_INVALID_DICE_COUNT"
	CodeDiceInvalidAdditionalDice Code = "DICE_INVALID_ADDITIONAL_DICE"
	CodeRandomInvalidBound        Code = "RANDOM_INVALID_BOUND"

	// Random source errors
	CodeRandomSourceFailure Code = "RANDOM_SOURCE_FAILURE"
	CodeRandomSeedFailure   Code = "RANDOM_SEED_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceInvalidFaces,
		CodeDiceInvalidDiceCount,
		CodeDiceInvalidAdditionalDice,
		CodeRandomInvalidBound:
		return codes.InvalidArgument

	// FailedPrecondition - the roller cannot be assembled
	case CodeDiceNoRandomSource:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}

// IsConstruction reports whether the code marks a roller construction failure.
func (c Code) IsConstruction() bool {
	return c == CodeDiceNoRandomSource
}

// IsConfiguration reports whether the code marks invalid roll parameters.
func (c Code) IsConfiguration() bool {
	switch c {
	case CodeDiceInvalidFaces,
		CodeDiceInvalidDiceCount,
		CodeDiceInvalidAdditionalDice,
		CodeRandomInvalidBound:
		return true
	default:
		return false
	}
}

// IsRandomSource reports whether the code marks a random source failure.
func (c Code) IsRandomSource() bool {
	switch c {
	case CodeRandomSourceFailure, CodeRandomSeedFailure:
		return true
	default:
		return false
	}
}
