package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// StockRepository provides access to starting stock records
type StockRepository interface {
	// StockFor returns the starting quantity for a (project, machine) pair.
	// Lookups are case/whitespace-insensitive; a missing record is zero.
	StockFor(project entities.ProjectID, machine string) (decimal.Decimal, error)
	LoadStock(stock []*entities.StartingStock) error
}
