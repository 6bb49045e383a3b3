package planner

import (
	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// fiveDayWeek is the standard grid: Monday-Friday, shifts 1, 2 and the
// multi-worker shift C, 7.5 hours per shift.
func fiveDayWeek() entities.WeekCalendar {
	return entities.WeekCalendar{
		Days:         []entities.Weekday{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		Shifts:       []entities.Shift{"1", "2", "C"},
		SpecialShift: "C",
		ShiftHours:   decimal.RequireFromString("7.5"),
	}
}

// singleDayWeek shrinks the grid to one day so tests can bound how many
// operator-shifts exist in total.
func singleDayWeek(shifts ...entities.Shift) entities.WeekCalendar {
	return entities.WeekCalendar{
		Days:         []entities.Weekday{"Monday"},
		Shifts:       shifts,
		SpecialShift: "C",
		ShiftHours:   decimal.RequireFromString("7.5"),
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func requirement(project, machine string, step, workers, slots int, rate, toProduce string) entities.ShiftRequirement {
	return entities.ShiftRequirement{
		Project:       entities.ProjectID(project),
		Step:          step,
		Machine:       machine,
		HourlyRate:    dec(rate),
		Workers:       workers,
		ToProduce:     dec(toProduce),
		RequiredSlots: slots,
	}
}

func operator(name string, shift entities.Shift) *entities.Operator {
	return &entities.Operator{Name: name, Shift: shift}
}

func workingOnly(assignments []entities.Assignment) []entities.Assignment {
	var working []entities.Assignment
	for _, a := range assignments {
		if a.Working {
			working = append(working, a)
		}
	}
	return working
}
