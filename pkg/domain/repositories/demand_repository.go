package repositories

import "github.com/lseveri/shiftplan/pkg/domain/entities"

// DemandRepository provides access to weekly demand data
type DemandRepository interface {
	// Weeks returns the week labels in input order.
	Weeks() ([]entities.WeekLabel, error)
	// DemandsForWeek returns one week's demand rows in project input order.
	DemandsForWeek(week entities.WeekLabel) ([]*entities.WeeklyDemand, error)
	LoadDemands(demands []*entities.WeeklyDemand) error
}
