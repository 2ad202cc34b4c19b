package dice

// budget tracks how many rerolls or bursts remain during one resolution.
// It is either finite or unlimited; an unlimited budget never depletes.
// The zero value is an exhausted finite budget.
type budget struct {
	unlimited bool
	remaining int
}

func finiteBudget(n int) budget {
	return budget{remaining: n}
}

func unlimitedBudget() budget {
	return budget{unlimited: true}
}

// exhausted reports whether nothing more can be spent.
func (b budget) exhausted() bool {
	return !b.unlimited && b.remaining <= 0
}

// take caps want by what the budget still allows.
func (b budget) take(want int) int {
	if b.unlimited || want <= b.remaining {
		return want
	}
	return b.remaining
}

// spend consumes n operations. Unlimited budgets never decrement.
func (b *budget) spend(n int) {
	if b.unlimited {
		return
	}
	b.remaining -= n
}
