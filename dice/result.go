package dice

// Die is the immutable view of one resolved die.
type Die struct {
	// History holds every face the die has shown, in chronological order.
	// A rerolled die grows its history by one entry per reroll; a burst
	// child starts a fresh single-entry history.
	History []int
	// Value is the face the die finally shows.
	Value int
	// Removed marks dice excluded from the total by removal selection.
	Removed bool
	// BurstProduct marks dice created by another die's burst.
	BurstProduct bool
}

// Result is the immutable outcome of one roll resolution.
type Result struct {
	// Dice lists every die created during resolution in creation order,
	// removed dice included.
	Dice []Die
	// Total is the bonus plus the sum of values of non-removed dice.
	Total int
	// Params echoes the parameters that produced this result.
	Params Params
}

// Bursts returns how many dice were created by bursts.
func (r Result) Bursts() int {
	n := 0
	for _, die := range r.Dice {
		if die.BurstProduct {
			n++
		}
	}
	return n
}

// Removed returns how many dice were discarded by removal selection.
func (r Result) Removed() int {
	n := 0
	for _, die := range r.Dice {
		if die.Removed {
			n++
		}
	}
	return n
}

// Kept returns the values of the dice that count toward the total, in
// creation order.
func (r Result) Kept() []int {
	values := make([]int, 0, len(r.Dice))
	for _, die := range r.Dice {
		if !die.Removed {
			values = append(values, die.Value)
		}
	}
	return values
}
