package memory

import (
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
)

// RosterRepository provides in-memory roster storage
type RosterRepository struct {
	operators []entities.Operator
}

// NewRosterRepository creates a new in-memory roster repository
func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

// Verify interface compliance
var _ repositories.RosterRepository = (*RosterRepository)(nil)

// LoadOperators loads roster entries into the repository
func (r *RosterRepository) LoadOperators(operators []*entities.Operator) error {
	for _, op := range operators {
		r.operators = append(r.operators, *op)
	}
	return nil
}

// Operators returns the roster in input order
func (r *RosterRepository) Operators() ([]*entities.Operator, error) {
	var operators []*entities.Operator
	for i := range r.operators {
		operators = append(operators, &r.operators[i])
	}
	return operators, nil
}
