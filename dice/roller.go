// Package dice resolves configurable dice rolls: roll a pool of dice, apply
// a bonus, discard the worst of any additional dice, then reroll minimum
// faces and burst maximum faces until the roll settles.
package dice

import (
	"context"
	"sort"

	apperrors "github.com/louisbranch/rollkit/errors"
	"github.com/louisbranch/rollkit/random"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultParams is the parameter set used when a Roller is built without
// explicit defaults: a single ten-faced die, no rerolls, no bursts.
var DefaultParams = Params{Faces: 10, Dice: 1}

// Roller resolves dice rolls against a random source provider.
type Roller struct {
	provider random.Provider
	defaults Params
	tracer   trace.Tracer
}

// RollerOption configures a Roller.
type RollerOption func(*Roller)

// WithDefaults sets the parameter set used by Roll.
func WithDefaults(params Params) RollerOption {
	return func(r *Roller) {
		r.defaults = params
	}
}

// WithTracer records a span per resolution on the given tracer.
func WithTracer(tracer trace.Tracer) RollerOption {
	return func(r *Roller) {
		r.tracer = tracer
	}
}

// NewRoller creates a Roller backed by the given provider.
// A nil provider fails with CodeDiceNoRandomSource.
func NewRoller(provider random.Provider, opts ...RollerOption) (*Roller, error) {
	if provider == nil {
		return nil, apperrors.New(apperrors.CodeDiceNoRandomSource,
			"roller requires a random source provider")
	}

	r := &Roller{provider: provider, defaults: DefaultParams}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Roll resolves the roller's default parameter set.
func (r *Roller) Roll(ctx context.Context) (Result, error) {
	return r.RollParams(ctx, r.defaults)
}

// RollParams resolves one roll.
//
// # Resolution order
//
// The source is acquired for the whole resolution and released on every
// exit path. Parameters are validated before any draw. The initial pool of
// Dice+AdditionalDice dice is rolled, removal selection discards the worst
// AdditionalDice dice once, then reroll and burst passes repeat until a
// full pass changes nothing or both budgets run out. Burst children join
// the pool immediately: a child showing the minimum face can be rerolled
// and a child showing the maximum face can itself burst, each die bursting
// at most once.
//
// # Determinism
//
// Given the same parameters and the same draw sequence from the source,
// RollParams produces the same Result. Reroll and burst candidates are
// taken in creation order and removal selection sorts stably, so outcomes
// are reproducible draw for draw.
//
// # Termination
//
// Finite budgets bound the resolution structurally. With an unlimited
// budget, termination is probabilistic: a source that keeps returning the
// extreme face keeps the loop running, matching the tabletop rule.
//
// # Errors
//
//   - Invalid parameters fail with a configuration code before any draw.
//   - Source failures abort the resolution and propagate verbatim.
func (r *Roller) RollParams(ctx context.Context, params Params) (Result, error) {
	var span trace.Span
	if r.tracer != nil {
		_, span = r.tracer.Start(ctx, "dice.Roll", trace.WithAttributes(
			attribute.Int("dice.faces", params.Faces),
			attribute.Int("dice.count", params.Dice),
			attribute.Int("dice.additional", params.AdditionalDice),
		))
		defer span.End()
	}

	result, err := r.resolve(params)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		return Result{}, err
	}

	if span != nil {
		span.SetAttributes(
			attribute.Int("dice.total", result.Total),
			attribute.Int("dice.removed", result.Removed()),
			attribute.Int("dice.burst_products", result.Bursts()),
		)
	}
	return result, nil
}

// resolve runs one full resolution while holding the source.
func (r *Roller) resolve(params Params) (Result, error) {
	src, release, err := r.provider.Acquire()
	if err != nil {
		return Result{}, err
	}
	defer release()

	if err := params.validate(); err != nil {
		return Result{}, err
	}

	records, err := initialRoll(src, params)
	if err != nil {
		return Result{}, err
	}

	rerolls := params.rerollBudget()
	bursts := params.burstBudget()

	selectRemovals(records, params, rerolls)

	records, err = runPasses(src, params, records, rerolls, bursts)
	if err != nil {
		return Result{}, err
	}

	return assemble(records, params), nil
}

// draw rolls a single die face in [1, faces].
func draw(src random.Source, faces int) (int, error) {
	value, err := src.Next(faces)
	if err != nil {
		return 0, err
	}
	return value + 1, nil
}

// initialRoll creates the base pool of Dice+AdditionalDice records.
func initialRoll(src random.Source, params Params) ([]*dieRecord, error) {
	count := params.Dice + params.AdditionalDice
	records := make([]*dieRecord, 0, count)
	for i := 0; i < count; i++ {
		value, err := draw(src, params.Faces)
		if err != nil {
			return nil, err
		}
		records = append(records, newDieRecord(value, false))
	}
	return records, nil
}

// selectRemovals discards the worst AdditionalDice dice, protecting
// minimum-face dice that a remaining reroll can still salvage. It runs
// exactly once, before any reroll or burst pass.
//
// The interplay between the discard pool, the rerollable count and the
// protected window is tuned game behavior; keep the arithmetic as is.
func selectRemovals(records []*dieRecord, params Params, rerolls budget) {
	if params.AdditionalDice == 0 {
		return
	}

	// Dice below the boundary are considered weak enough to discard. With
	// unlimited rerolls every minimum face can be salvaged, so the boundary
	// shifts up by one.
	boundary := params.Faces / 2
	if params.InfiniteRerolls() {
		boundary++
	}

	sorted := make([]*dieRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].value() < sorted[j].value()
	})

	weak := 0
	rerollable := 0
	for _, record := range sorted {
		if record.value() < boundary {
			weak++
		}
		if record.value() == minimumFace {
			rerollable++
		}
	}

	// The discard pool is at least as large as the configured extra dice.
	eligible := max(params.AdditionalDice, weak)

	// skip counts the minimum-face dice spared from discard because a
	// reroll will handle them instead.
	skip := rerolls.take(min(eligible-params.AdditionalDice, rerollable))
	protected := rerollable - skip

	removed := 0
	for i, record := range sorted {
		if removed == params.AdditionalDice {
			break
		}
		// The window [protected, rerollable) in sorted order is spared.
		if i >= protected && i < rerollable {
			continue
		}
		record.removed = true
		removed++
	}
}

// runPasses applies reroll and burst sub-passes until a full pass changes
// nothing or both budgets are exhausted. Burst children join the pool
// immediately and participate in later passes.
func runPasses(src random.Source, params Params, records []*dieRecord, rerolls, bursts budget) ([]*dieRecord, error) {
	for {
		changed := false

		if !rerolls.exhausted() {
			candidates := rerollCandidates(records)
			take := rerolls.take(len(candidates))
			for _, record := range candidates[:take] {
				value, err := draw(src, params.Faces)
				if err != nil {
					return nil, err
				}
				record.reroll(value)
			}
			rerolls.spend(take)
			if take > 0 {
				changed = true
			}
		}

		if !bursts.exhausted() {
			candidates := burstCandidates(records, params.Faces)
			take := bursts.take(len(candidates))
			for _, record := range candidates[:take] {
				record.burstTriggered = true
				value, err := draw(src, params.Faces)
				if err != nil {
					return nil, err
				}
				records = append(records, newDieRecord(value, true))
			}
			bursts.spend(take)
			if take > 0 {
				changed = true
			}
		}

		if !changed || (rerolls.exhausted() && bursts.exhausted()) {
			return records, nil
		}
	}
}

// rerollCandidates lists non-removed dice showing the minimum face, in
// creation order.
func rerollCandidates(records []*dieRecord) []*dieRecord {
	var candidates []*dieRecord
	for _, record := range records {
		if !record.removed && record.value() == minimumFace {
			candidates = append(candidates, record)
		}
	}
	return candidates
}

// burstCandidates lists non-removed dice showing the maximum face that have
// not burst yet, in creation order.
func burstCandidates(records []*dieRecord, faces int) []*dieRecord {
	var candidates []*dieRecord
	for _, record := range records {
		if !record.removed && !record.burstTriggered && record.value() == faces {
			candidates = append(candidates, record)
		}
	}
	return candidates
}

// assemble snapshots every record into the immutable result.
func assemble(records []*dieRecord, params Params) Result {
	dice := make([]Die, 0, len(records))
	total := params.Bonus
	for _, record := range records {
		die := record.snapshot()
		dice = append(dice, die)
		if !die.Removed {
			total += die.Value
		}
	}
	return Result{Dice: dice, Total: total, Params: params}
}
