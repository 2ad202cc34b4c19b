package dice

// dieRecord is the engine-owned working state for one die.
//
// A reroll appends to the record's history; a burst creates a new record
// instead of extending this one, so records never reference each other.
// Records are never destroyed: removed dice survive into the final result.
type dieRecord struct {
	history        []int
	removed        bool
	burstTriggered bool
	burstProduct   bool
}

func newDieRecord(value int, burstProduct bool) *dieRecord {
	return &dieRecord{history: []int{value}, burstProduct: burstProduct}
}

// value returns the face the die currently shows.
func (d *dieRecord) value() int {
	return d.history[len(d.history)-1]
}

// reroll replaces the shown face, keeping prior values in history.
func (d *dieRecord) reroll(value int) {
	d.history = append(d.history, value)
}

// snapshot produces the immutable view exposed on results.
func (d *dieRecord) snapshot() Die {
	history := make([]int, len(d.history))
	copy(history, d.history)
	return Die{
		History:      history,
		Value:        d.value(),
		Removed:      d.removed,
		BurstProduct: d.burstProduct,
	}
}
