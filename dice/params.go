package dice

import (
	"strconv"

	apperrors "github.com/louisbranch/rollkit/errors"
)

// Infinite marks a reroll or burst budget with no limit.
const Infinite = -1

// minimumFace is the face value that makes a die eligible for rerolling.
const minimumFace = 1

// Params describes a single roll request.
type Params struct {
	// Faces is the number of faces per die. Must be at least 1.
	Faces int
	// Dice is the base number of dice rolled. Must not be negative.
	Dice int
	// AdditionalDice is the number of extra dice rolled; exactly that many
	// of the worst eligible dice are discarded after the initial roll, so
	// the net effect is rolling more dice and keeping the best Dice of
	// them. Must not be negative.
	AdditionalDice int
	// Rerolls is the budget of rerolls for dice showing the minimum face.
	// Negative means unlimited.
	Rerolls int
	// Bursts is the budget of bursts for dice showing the maximum face.
	// Negative means unlimited.
	Bursts int
	// Bonus is added once to the total.
	Bonus int
}

// InfiniteRerolls reports whether the reroll budget is unlimited.
func (p Params) InfiniteRerolls() bool {
	return p.Rerolls < 0
}

// InfiniteBursts reports whether the burst budget is unlimited.
func (p Params) InfiniteBursts() bool {
	return p.Bursts < 0
}

// rerollBudget builds the working reroll budget for one resolution.
func (p Params) rerollBudget() budget {
	if p.InfiniteRerolls() {
		return unlimitedBudget()
	}
	return finiteBudget(p.Rerolls)
}

// burstBudget builds the working burst budget for one resolution.
func (p Params) burstBudget() budget {
	if p.InfiniteBursts() {
		return unlimitedBudget()
	}
	return finiteBudget(p.Bursts)
}

// validate checks the parameter invariants. It runs before any draw.
func (p Params) validate() error {
	if p.Faces < 1 {
		return apperrors.WithMetadata(apperrors.CodeDiceInvalidFaces,
			"faces count must be at least 1",
			map[string]string{"Faces": strconv.Itoa(p.Faces)})
	}
	if p.Dice < 0 {
		return apperrors.WithMetadata(apperrors.CodeDiceInvalidDiceCount,
			"dice count cannot be negative",
			map[string]string{"Dice": strconv.Itoa(p.Dice)})
	}
	if p.AdditionalDice < 0 {
		return apperrors.WithMetadata(apperrors.CodeDiceInvalidAdditionalDice,
			"additional dice count cannot be negative",
			map[string]string{"AdditionalDice": strconv.Itoa(p.AdditionalDice)})
	}
	return nil
}
