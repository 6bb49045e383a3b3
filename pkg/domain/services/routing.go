package services

import (
	"slices"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// RoutingIndex answers ordered routing lookups over the full operation table.
// Operations are grouped by normalized project and sorted by operation-order
// key; ties keep their input order.
type RoutingIndex struct {
	byProject map[string][]entities.Operation
}

// NewRoutingIndex builds an index from the routing table rows in input order.
func NewRoutingIndex(ops []*entities.Operation) *RoutingIndex {
	ix := &RoutingIndex{byProject: make(map[string][]entities.Operation)}
	for _, op := range ops {
		key := NormalizeKey(string(op.Project))
		ix.byProject[key] = append(ix.byProject[key], *op)
	}
	for key := range ix.byProject {
		slices.SortStableFunc(ix.byProject[key], func(a, b entities.Operation) int {
			return CompareOrderKeys(a.OrderKey, b.OrderKey)
		})
	}
	return ix
}

// OperationsFor returns the project's operations in routing order. A project
// with no routing rows yields an empty slice.
func (ix *RoutingIndex) OperationsFor(project entities.ProjectID) []entities.Operation {
	return ix.byProject[NormalizeKey(string(project))]
}
