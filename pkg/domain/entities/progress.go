package entities

import "github.com/shopspring/decimal"

// ProgressEntry reports cumulative completion for one (project, machine)
// pair across the week.
type ProgressEntry struct {
	Project ProjectID `json:"project"`
	Machine string    `json:"machine"`
	// Daily holds the cumulative completion percentage at the end of each
	// day, in week order, capped for display.
	Daily []decimal.Decimal `json:"daily_percent"`
	// Ready is true iff the final day's cumulative percentage reaches 100.
	Ready bool `json:"ready"`
}
