package memory

import (
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
)

// DemandRepository provides in-memory weekly demand storage
type DemandRepository struct {
	demands []entities.WeeklyDemand
	weeks   []entities.WeekLabel
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadDemands loads demand rows into the repository, tracking week labels in
// first-seen order.
func (r *DemandRepository) LoadDemands(demands []*entities.WeeklyDemand) error {
	for _, d := range demands {
		r.demands = append(r.demands, *d)
		seen := false
		for _, w := range r.weeks {
			if w == d.Week {
				seen = true
				break
			}
		}
		if !seen {
			r.weeks = append(r.weeks, d.Week)
		}
	}
	return nil
}

// Weeks returns the week labels in input order
func (r *DemandRepository) Weeks() ([]entities.WeekLabel, error) {
	return append([]entities.WeekLabel(nil), r.weeks...), nil
}

// DemandsForWeek returns one week's demand rows in project input order
func (r *DemandRepository) DemandsForWeek(week entities.WeekLabel) ([]*entities.WeeklyDemand, error) {
	var demands []*entities.WeeklyDemand
	for i := range r.demands {
		if r.demands[i].Week == week {
			demands = append(demands, &r.demands[i])
		}
	}
	return demands, nil
}
