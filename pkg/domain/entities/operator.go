package entities

// Shift is a fixed roster shift label, e.g. "1", "2" or "C".
type Shift string

// Operator is one roster entry. The shift is fixed for the whole week; it is
// roster data, not a planning decision.
type Operator struct {
	Name  string
	Shift Shift
}
