package dice

import "testing"

func recordsWithValues(values ...int) []*dieRecord {
	records := make([]*dieRecord, 0, len(values))
	for _, v := range values {
		records = append(records, newDieRecord(v, false))
	}
	return records
}

func removedFlags(records []*dieRecord) []bool {
	flags := make([]bool, len(records))
	for i, record := range records {
		flags[i] = record.removed
	}
	return flags
}

// TestSelectRemovals exercises the discard window arithmetic directly on
// crafted pools.
func TestSelectRemovals(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		params  Params
		rerolls budget
		want    []bool
	}{
		{
			name:    "no additional dice means no removals",
			values:  []int{1, 2, 3},
			params:  Params{Faces: 6, Dice: 3},
			rerolls: finiteBudget(2),
			want:    []bool{false, false, false},
		},
		{
			name:    "worst die discarded when nothing is weak",
			values:  []int{5, 6},
			params:  Params{Faces: 6, Dice: 1, AdditionalDice: 1},
			rerolls: finiteBudget(0),
			want:    []bool{true, false},
		},
		{
			name:    "protected window spares the last rerollable one",
			values:  []int{1, 1, 2, 5},
			params:  Params{Faces: 6, Dice: 2, AdditionalDice: 2, Rerolls: 1},
			rerolls: finiteBudget(1),
			want:    []bool{true, false, true, false},
		},
		{
			name:    "no budget leaves no protection",
			values:  []int{1, 1, 2, 5},
			params:  Params{Faces: 6, Dice: 2, AdditionalDice: 2},
			rerolls: finiteBudget(0),
			want:    []bool{true, true, false, false},
		},
		{
			name:    "unlimited rerolls widen the boundary",
			values:  []int{3, 3, 5},
			params:  Params{Faces: 6, Dice: 2, AdditionalDice: 1, Rerolls: Infinite},
			rerolls: unlimitedBudget(),
			want:    []bool{true, false, false},
		},
		{
			name:    "unprotected ones discarded before higher dice",
			values:  []int{1, 1, 1, 6},
			params:  Params{Faces: 6, Dice: 2, AdditionalDice: 2, Rerolls: Infinite},
			rerolls: unlimitedBudget(),
			want:    []bool{true, true, false, false},
		},
		{
			name:    "stable sort discards the earliest tie",
			values:  []int{2, 2, 2, 2},
			params:  Params{Faces: 6, Dice: 3, AdditionalDice: 1},
			rerolls: finiteBudget(0),
			want:    []bool{true, false, false, false},
		},
		{
			name:    "all-additional pool is fully discarded",
			values:  []int{2, 4},
			params:  Params{Faces: 6, Dice: 0, AdditionalDice: 2},
			rerolls: finiteBudget(0),
			want:    []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := recordsWithValues(tt.values...)
			selectRemovals(records, tt.params, tt.rerolls)

			got := removedFlags(records)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("removed flags = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// TestSelectRemovalsNeverExceedsAdditional ensures at most AdditionalDice
// dice are discarded even when the weak pool is larger.
func TestSelectRemovalsNeverExceedsAdditional(t *testing.T) {
	records := recordsWithValues(1, 1, 2, 2, 2)
	selectRemovals(records, Params{Faces: 6, Dice: 4, AdditionalDice: 1}, finiteBudget(0))

	removed := 0
	for _, record := range records {
		if record.removed {
			removed++
		}
	}
	if removed != 1 {
		t.Fatalf("expected exactly 1 removal, got %d", removed)
	}
}

// TestSelectRemovalsDoesNotSpendRerolls ensures protection only counts the
// budget, it never consumes it.
func TestSelectRemovalsDoesNotSpendRerolls(t *testing.T) {
	records := recordsWithValues(1, 1, 2, 5)
	rerolls := finiteBudget(1)
	selectRemovals(records, Params{Faces: 6, Dice: 3, AdditionalDice: 1, Rerolls: 1}, rerolls)

	if rerolls.exhausted() {
		t.Fatal("removal selection must not spend the reroll budget")
	}
}
