package repositories

import "github.com/lseveri/shiftplan/pkg/domain/entities"

// RosterRepository provides access to the operator roster
type RosterRepository interface {
	// Operators returns the roster in input order. Roster order decides who
	// is assigned first when operators compete for work.
	Operators() ([]*entities.Operator, error)
	LoadOperators(operators []*entities.Operator) error
}
