package repositories

import "github.com/lseveri/shiftplan/pkg/domain/entities"

// RoutingRepository provides access to the routing (operation) table
type RoutingRepository interface {
	// AllOperations returns every routing row in input order.
	AllOperations() ([]*entities.Operation, error)
	LoadOperations(ops []*entities.Operation) error
}
