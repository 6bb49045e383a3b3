package entities

import "github.com/shopspring/decimal"

// ProjectID identifies a production project (a model in the demand sheet).
// IDs are matched case-insensitively with surrounding whitespace ignored;
// the raw form is kept for display.
type ProjectID string

// WeekLabel identifies one demand column, e.g. "wk1".
type WeekLabel string

// WeeklyDemand is one project's demanded quantity for one week column.
type WeeklyDemand struct {
	Project  ProjectID
	Week     WeekLabel
	Quantity decimal.Decimal
}
