package services

import (
	"strings"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// NormalizeKey canonicalizes a join key for matching: surrounding whitespace
// is trimmed and the result uppercased. Applied at every lookup boundary so
// that "alpha " and "ALPHA" refer to the same record.
func NormalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// StockKey joins starting stock, production totals and progress to a
// (project, machine) pair. Both components are normalized.
type StockKey struct {
	Project string
	Machine string
}

// NewStockKey builds a normalized StockKey.
func NewStockKey(project entities.ProjectID, machine string) StockKey {
	return StockKey{
		Project: NormalizeKey(string(project)),
		Machine: NormalizeKey(machine),
	}
}
