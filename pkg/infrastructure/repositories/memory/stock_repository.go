package memory

import (
	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
	"github.com/lseveri/shiftplan/pkg/domain/services"
)

// StockRepository provides in-memory starting stock storage keyed by
// normalized (project, machine) pairs.
type StockRepository struct {
	stock map[services.StockKey]decimal.Decimal
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository() *StockRepository {
	return &StockRepository{
		stock: make(map[services.StockKey]decimal.Decimal),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// LoadStock loads starting stock records into the repository
func (r *StockRepository) LoadStock(stock []*entities.StartingStock) error {
	for _, s := range stock {
		r.stock[services.NewStockKey(s.Project, s.Machine)] = s.Quantity
	}
	return nil
}

// StockFor returns the starting quantity for a (project, machine) pair.
// A missing record is zero, not an error.
func (r *StockRepository) StockFor(project entities.ProjectID, machine string) (decimal.Decimal, error) {
	if qty, ok := r.stock[services.NewStockKey(project, machine)]; ok {
		return qty, nil
	}
	return decimal.Zero, nil
}
