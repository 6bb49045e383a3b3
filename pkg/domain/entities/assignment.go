package entities

import "github.com/shopspring/decimal"

// Assignment records what one operator does in one (day, shift) slot of their
// fixed shift. A slot that received no work is recorded with Working false
// and zero produced quantity.
type Assignment struct {
	Operator string          `json:"operator"`
	Day      Weekday         `json:"day"`
	Shift    Shift           `json:"shift"`
	Working  bool            `json:"working"`
	Machine  string          `json:"machine,omitempty"`
	Project  ProjectID       `json:"project,omitempty"`
	Step     int             `json:"step,omitempty"` // 1-based routing step number
	Produced decimal.Decimal `json:"produced"`
}

// ShiftRequirement is the resolved weekly workload for one routing step.
type ShiftRequirement struct {
	Project ProjectID `json:"project"`
	// Step is the zero-based position in the project's ordered routing.
	Step       int             `json:"step"`
	Machine    string          `json:"machine"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Workers    int             `json:"workers"`
	// ToProduce is the outstanding quantity for this step this week.
	ToProduce decimal.Decimal `json:"to_produce"`
	// RequiredSlots is the number of single-operator shifts needed to cover
	// ToProduce at the step's rate. Zero when the rate is non-positive.
	RequiredSlots int `json:"required_slots"`
}
