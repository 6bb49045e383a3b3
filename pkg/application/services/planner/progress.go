package planner

import (
	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/services"
)

var (
	hundred = decimal.NewFromInt(100)
	// displayPercentCap bounds reported percentages; anything above is
	// overproduction the report does not need to distinguish.
	displayPercentCap = decimal.NewFromInt(140)
)

// trackProgress aggregates produced quantities by (project, machine, day)
// and folds them into per-day cumulative completion percentages, starting
// from each pair's initial stock.
func trackProgress(
	days []entities.Weekday,
	assignments []entities.Assignment,
	totals *pairTotals,
) []entities.ProgressEntry {
	type dayKey struct {
		pair services.StockKey
		day  entities.Weekday
	}

	producedByDay := make(map[dayKey]decimal.Decimal)
	for _, a := range assignments {
		if !a.Working {
			continue
		}
		key := dayKey{services.NewStockKey(a.Project, a.Machine), a.Day}
		producedByDay[key] = producedByDay[key].Add(a.Produced)
	}

	entries := make([]entities.ProgressEntry, 0, len(totals.keys))
	for _, pair := range totals.keys {
		pt := totals.byKey[pair]
		cumulative := pt.Initial
		daily := make([]decimal.Decimal, 0, len(days))

		for _, day := range days {
			cumulative = cumulative.Add(producedByDay[dayKey{pair, day}])
			// A pair with nothing to produce and no stock reports 0%, not a
			// division by zero.
			percent := decimal.Zero
			if pt.Total.IsPositive() {
				percent = hundred.Mul(cumulative).Div(pt.Total)
			}
			daily = append(daily, decimal.Min(percent, displayPercentCap))
		}

		ready := len(daily) > 0 && daily[len(daily)-1].GreaterThanOrEqual(hundred)
		entries = append(entries, entities.ProgressEntry{
			Project: pt.Project,
			Machine: pt.Machine,
			Daily:   daily,
			Ready:   ready,
		})
	}

	return entries
}
