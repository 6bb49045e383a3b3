package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
	"github.com/lseveri/shiftplan/pkg/domain/services"
)

// pairTotal carries the production target and starting stock for one
// (project, machine) pair, keeping the raw names for display.
type pairTotal struct {
	Project entities.ProjectID
	Machine string
	Total   decimal.Decimal
	Initial decimal.Decimal
}

// pairTotals preserves the first-seen order of (project, machine) pairs so
// progress output is deterministic.
type pairTotals struct {
	keys  []services.StockKey
	byKey map[services.StockKey]*pairTotal
}

func newPairTotals() *pairTotals {
	return &pairTotals{byKey: make(map[services.StockKey]*pairTotal)}
}

// set records the target and initial stock for a pair. When several steps of
// one project share a machine, the last written step wins (one entry per
// key).
func (t *pairTotals) set(project entities.ProjectID, machine string, total, initial decimal.Decimal) {
	key := services.NewStockKey(project, machine)
	if _, ok := t.byKey[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.byKey[key] = &pairTotal{Project: project, Machine: machine, Total: total, Initial: initial}
}

// resolveRequirements translates one week's demand into per-step shift
// requirements.
//
// Every step targets the full weekly demand; starting stock only offsets the
// first step. Steps are deliberately not chained (step 2's input is not step
// 1's output) — each machine stage targets the same end-customer quantity.
func resolveRequirements(
	demands []*entities.WeeklyDemand,
	index *services.RoutingIndex,
	stockRepo repositories.StockRepository,
	shiftHours decimal.Decimal,
) ([]entities.ShiftRequirement, *pairTotals, error) {
	var reqs []entities.ShiftRequirement
	totals := newPairTotals()

	for _, demand := range demands {
		ops := index.OperationsFor(demand.Project)
		if len(ops) == 0 {
			// A project that is demanded but routes nowhere cannot be
			// scheduled or progressed; this is an input-consistency error.
			return nil, nil, fmt.Errorf("project %q has demand but no routing operations", demand.Project)
		}

		for step, op := range ops {
			initial, err := stockRepo.StockFor(demand.Project, op.Machine)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to look up stock for %s/%s: %w", demand.Project, op.Machine, err)
			}

			toProduce := demand.Quantity
			if step == 0 {
				toProduce = toProduce.Sub(initial)
			}
			if toProduce.IsNegative() {
				toProduce = decimal.Zero
			}

			workers := op.Workers
			if workers < 1 {
				workers = 1
			}

			reqs = append(reqs, entities.ShiftRequirement{
				Project:       demand.Project,
				Step:          step,
				Machine:       op.Machine,
				HourlyRate:    op.HourlyRate,
				Workers:       workers,
				ToProduce:     toProduce,
				RequiredSlots: requiredSlots(toProduce, op.HourlyRate, shiftHours),
			})
			totals.set(demand.Project, op.Machine, toProduce.Add(initial), initial)
		}
	}

	return reqs, totals, nil
}

// requiredSlots is ceil(toProduce / (rate × shiftHours)). A non-positive
// rate yields zero: the step is unschedulable and silently skipped.
func requiredSlots(toProduce, rate, shiftHours decimal.Decimal) int {
	if !rate.IsPositive() {
		return 0
	}
	perShift := rate.Mul(shiftHours)
	return int(toProduce.Div(perShift).Ceil().IntPart())
}
