package events

import (
	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

const (
	WeekPlannedEvent           = "plan.week.computed"
	RequirementCalculatedEvent = "plan.requirement.calculated"
	ShortfallIdentifiedEvent   = "plan.shortfall.identified"
)

type WeekPlanned struct {
	Week          entities.WeekLabel `json:"week"`
	WeekNumber    int                `json:"week_number"`
	Operators     int                `json:"operators"`
	Requirements  int                `json:"requirements"`
	ReadyPairs    int                `json:"ready_pairs"`
	ProgressPairs int                `json:"progress_pairs"`
}

type RequirementCalculated struct {
	Requirement entities.ShiftRequirement `json:"requirement"`
}

// ShortfallIdentified is published for every (project, machine) pair that
// does not reach readiness by the end of the week. A shortfall is a planning
// outcome, not an error.
type ShortfallIdentified struct {
	Progress entities.ProgressEntry `json:"progress"`
}
