package entities

import "github.com/shopspring/decimal"

// Operation is one routing step of a project. It runs on exactly one machine
// at a fixed hourly production rate.
type Operation struct {
	Project ProjectID
	// OrderKey is the raw ordering value from the routing table: an integer,
	// free text, or the "final step" sentinel that always sorts last.
	OrderKey string
	Machine  string
	// HourlyRate is pieces per hour. A non-positive rate disables scheduling
	// for this operation.
	HourlyRate decimal.Decimal
	// Workers is the maximum number of operators that may run this operation
	// concurrently on the multi-worker shift. Minimum 1.
	Workers int
}

// StartingStock is the quantity on hand for a (project, machine) pair at the
// start of the week. Pairs without a record default to zero.
type StartingStock struct {
	Project  ProjectID
	Machine  string
	Quantity decimal.Decimal
}
