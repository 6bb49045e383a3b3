package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// OperatorSchedule is one operator's planned week: exactly one slot per day
// on the operator's fixed shift, in week order.
type OperatorSchedule struct {
	Operator   string                `json:"operator"`
	Shift      entities.Shift        `json:"shift"`
	ShiftHours decimal.Decimal       `json:"shift_hours"`
	Slots      []entities.Assignment `json:"slots"`
}

// PlanResult contains the complete output of planning one week. It is the
// in-memory model handed to renderers and the plan archive.
type PlanResult struct {
	RunID      string             `json:"run_id"`
	Week       entities.WeekLabel `json:"week"`
	WeekNumber int                `json:"week_number"` // 1-based position in the horizon
	ComputedAt time.Time          `json:"computed_at"`
	Days       []entities.Weekday `json:"days"`
	ShiftHours decimal.Decimal    `json:"shift_hours"`

	Requirements []entities.ShiftRequirement `json:"requirements"`
	Schedules    []OperatorSchedule          `json:"schedules"` // roster order
	Progress     []entities.ProgressEntry    `json:"progress"`  // first-seen (project, machine) order
}

// ReadyPairs counts the progress entries that reach readiness by week end.
func (r *PlanResult) ReadyPairs() int {
	n := 0
	for _, p := range r.Progress {
		if p.Ready {
			n++
		}
	}
	return n
}
