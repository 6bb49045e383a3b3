package planner

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/services"
)

// weekState holds the counters that persist across the whole week, indexed
// by requirement position.
type weekState struct {
	remaining []decimal.Decimal
	assigned  []int
}

// dayState holds one day's machine-exclusivity marks and the special-shift
// headcount per requirement. Rebuilt at the start of every day.
type dayState struct {
	regularMachines map[string]bool
	specialMachines map[string]bool
	specialCount    []int
}

// allocate runs the greedy single pass over days × shifts × candidates and
// returns one assignment per (operator, day, own-shift) slot, working or not.
//
// Ordering is part of correctness: operators are consumed front-first in
// roster order, and candidates keep requirement insertion order except on
// the special shift, where higher worker capacity goes first.
func allocate(
	cal entities.WeekCalendar,
	reqs []entities.ShiftRequirement,
	roster []*entities.Operator,
) []entities.Assignment {
	ws := &weekState{
		remaining: make([]decimal.Decimal, len(reqs)),
		assigned:  make([]int, len(reqs)),
	}
	for i := range reqs {
		ws.remaining[i] = reqs[i].ToProduce
	}

	var assignments []entities.Assignment

	for _, day := range cal.Days {
		ds := &dayState{
			regularMachines: make(map[string]bool),
			specialMachines: make(map[string]bool),
			specialCount:    make([]int, len(reqs)),
		}

		for _, shift := range cal.Shifts {
			var queue []*entities.Operator
			for _, operator := range roster {
				if operator.Shift == shift {
					queue = append(queue, operator)
				}
			}
			pool := append([]*entities.Operator(nil), queue...)
			assignedHere := make(map[string]bool)

			candidates := make([]int, 0, len(reqs))
			for i := range reqs {
				if ws.assigned[i] < reqs[i].RequiredSlots {
					candidates = append(candidates, i)
				}
			}
			if shift == cal.SpecialShift {
				// Fill multi-operator stations first; stable keeps
				// insertion order on equal capacity.
				slices.SortStableFunc(candidates, func(a, b int) int {
					return reqs[b].Workers - reqs[a].Workers
				})
			}

			for _, i := range candidates {
				req := &reqs[i]
				if ws.assigned[i] >= req.RequiredSlots {
					continue
				}
				machine := services.NormalizeKey(req.Machine)

				if shift == cal.SpecialShift {
					// A machine already run on a regular shift today is off
					// limits for the special shift.
					if ds.regularMachines[machine] {
						continue
					}
					for ds.specialCount[i] < req.Workers && len(queue) > 0 && ws.assigned[i] < req.RequiredSlots {
						operator := queue[0]
						queue = queue[1:]
						produced := produceNow(req.HourlyRate, cal.ShiftHours, ws.remaining[i])
						assignments = append(assignments, workingAssignment(operator, day, shift, req, produced))
						assignedHere[operator.Name] = true
						ws.assigned[i]++
						ws.remaining[i] = ws.remaining[i].Sub(produced)
						ds.specialCount[i]++
						ds.specialMachines[machine] = true
					}
				} else {
					if ds.specialMachines[machine] {
						continue
					}
					if len(queue) == 0 {
						continue
					}
					// Capacity only matters on the special shift: one
					// operator per requirement per regular shift.
					operator := queue[0]
					queue = queue[1:]
					produced := produceNow(req.HourlyRate, cal.ShiftHours, ws.remaining[i])
					assignments = append(assignments, workingAssignment(operator, day, shift, req, produced))
					assignedHere[operator.Name] = true
					ws.assigned[i]++
					ws.remaining[i] = ws.remaining[i].Sub(produced)
					ds.regularMachines[machine] = true
				}
			}

			for _, operator := range pool {
				if !assignedHere[operator.Name] {
					assignments = append(assignments, entities.Assignment{
						Operator: operator.Name,
						Day:      day,
						Shift:    shift,
						Working:  false,
						Produced: decimal.Zero,
					})
				}
			}
		}
	}

	return assignments
}

// produceNow caps one shift's output by what is still outstanding, so
// remaining quantity never goes negative.
func produceNow(rate, shiftHours, remaining decimal.Decimal) decimal.Decimal {
	return decimal.Min(rate.Mul(shiftHours), remaining)
}

func workingAssignment(
	operator *entities.Operator,
	day entities.Weekday,
	shift entities.Shift,
	req *entities.ShiftRequirement,
	produced decimal.Decimal,
) entities.Assignment {
	return entities.Assignment{
		Operator: operator.Name,
		Day:      day,
		Shift:    shift,
		Working:  true,
		Machine:  req.Machine,
		Project:  req.Project,
		Step:     req.Step + 1,
		Produced: produced,
	}
}
