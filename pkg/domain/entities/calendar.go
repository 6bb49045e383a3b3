package entities

import "github.com/shopspring/decimal"

// Weekday is a planning day label. The week is a fixed ordered set of days.
type Weekday string

// WeekCalendar fixes the day and shift grid for one planning week.
type WeekCalendar struct {
	// Days in planning order.
	Days []Weekday
	// Shifts in processing order within a day.
	Shifts []Shift
	// SpecialShift is the multi-worker shift. A machine run on it may not
	// also run on any other shift the same day, and vice versa.
	SpecialShift Shift
	// ShiftHours is the working length of one shift in hours.
	ShiftHours decimal.Decimal
}

// Slots returns the total number of (day, shift) combinations in the week.
func (c WeekCalendar) Slots() int {
	return len(c.Days) * len(c.Shifts)
}
