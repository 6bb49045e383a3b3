package memory

import (
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
)

// RoutingRepository provides in-memory routing table storage
type RoutingRepository struct {
	operations []entities.Operation
}

// NewRoutingRepository creates a new in-memory routing repository
func NewRoutingRepository() *RoutingRepository {
	return &RoutingRepository{}
}

// Verify interface compliance
var _ repositories.RoutingRepository = (*RoutingRepository)(nil)

// LoadOperations loads routing rows into the repository
func (r *RoutingRepository) LoadOperations(ops []*entities.Operation) error {
	for _, op := range ops {
		r.operations = append(r.operations, *op)
	}
	return nil
}

// AllOperations returns every routing row in input order
func (r *RoutingRepository) AllOperations() ([]*entities.Operation, error) {
	var ops []*entities.Operation
	for i := range r.operations {
		ops = append(ops, &r.operations[i])
	}
	return ops, nil
}
