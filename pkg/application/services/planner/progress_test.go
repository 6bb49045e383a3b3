package planner

import (
	"testing"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

func pairTotalsOf(t *testing.T, entries ...*pairTotal) *pairTotals {
	t.Helper()
	totals := newPairTotals()
	for _, e := range entries {
		totals.set(e.Project, e.Machine, e.Total, e.Initial)
	}
	return totals
}

func produced(operator, day, machine, project, qty string) entities.Assignment {
	return entities.Assignment{
		Operator: operator,
		Day:      entities.Weekday(day),
		Shift:    "1",
		Working:  true,
		Machine:  machine,
		Project:  entities.ProjectID(project),
		Step:     1,
		Produced: dec(qty),
	}
}

func TestTrackProgress_ReadyAtExactlyHundred(t *testing.T) {
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t, &pairTotal{Project: "alpha", Machine: "LATHE", Total: dec("100"), Initial: dec("20")})
	assignments := []entities.Assignment{
		produced("Anna", "Monday", "LATHE", "alpha", "75"),
		produced("Bruno", "Tuesday", "LATHE", "alpha", "5"),
	}

	entries := trackProgress(days, assignments, totals)
	if len(entries) != 1 {
		t.Fatalf("expected 1 progress entry, got %d", len(entries))
	}

	e := entries[0]
	wantDaily := []string{"95", "100", "100", "100", "100"}
	for i, want := range wantDaily {
		if !e.Daily[i].Equal(dec(want)) {
			t.Errorf("day %d percent = %s, want %s", i, e.Daily[i], want)
		}
	}
	if !e.Ready {
		t.Error("cumulative reaches exactly 100.000%% by Friday, readiness must be true")
	}
}

func TestTrackProgress_ShortfallStaysBelowHundred(t *testing.T) {
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t, &pairTotal{Project: "alpha", Machine: "LATHE", Total: dec("100"), Initial: dec("20")})
	assignments := []entities.Assignment{
		produced("Anna", "Monday", "LATHE", "alpha", "75"),
	}

	entries := trackProgress(days, assignments, totals)
	e := entries[0]

	if !e.Daily[len(e.Daily)-1].Equal(dec("95")) {
		t.Errorf("final percent = %s, want 95", e.Daily[len(e.Daily)-1])
	}
	if e.Ready {
		t.Error("95%% by Friday must not be ready")
	}
}

func TestTrackProgress_CapsDisplayAtOneHundredForty(t *testing.T) {
	// Two steps sharing one machine can overproduce against the pair total.
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t, &pairTotal{Project: "alpha", Machine: "SHARED", Total: dec("100"), Initial: dec("0")})
	assignments := []entities.Assignment{
		produced("Anna", "Monday", "SHARED", "alpha", "100"),
		produced("Bruno", "Monday", "SHARED", "alpha", "100"),
	}

	entries := trackProgress(days, assignments, totals)
	for i, v := range entries[0].Daily {
		if !v.Equal(dec("140")) {
			t.Errorf("day %d percent = %s, want capped 140", i, v)
		}
	}
	if !entries[0].Ready {
		t.Error("capped percentages above 100 are still ready")
	}
}

func TestTrackProgress_ZeroTotalIsZeroPercent(t *testing.T) {
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t, &pairTotal{Project: "alpha", Machine: "IDLE", Total: dec("0"), Initial: dec("0")})

	entries := trackProgress(days, nil, totals)
	for i, v := range entries[0].Daily {
		if !v.IsZero() {
			t.Errorf("day %d percent = %s, want 0 (no division by zero)", i, v)
		}
	}
	if entries[0].Ready {
		t.Error("a pair with nothing to produce is not ready")
	}
}

func TestTrackProgress_AbsentRecordsIgnored(t *testing.T) {
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t, &pairTotal{Project: "alpha", Machine: "LATHE", Total: dec("100"), Initial: dec("0")})
	assignments := []entities.Assignment{
		{Operator: "Anna", Day: "Monday", Shift: "1", Working: false, Produced: dec("0")},
		produced("Bruno", "Monday", "LATHE", "alpha", "50"),
	}

	entries := trackProgress(days, assignments, totals)
	if !entries[0].Daily[0].Equal(dec("50")) {
		t.Errorf("Monday percent = %s, want 50", entries[0].Daily[0])
	}
}

func TestTrackProgress_PairOrderIsFirstSeen(t *testing.T) {
	days := fiveDayWeek().Days
	totals := pairTotalsOf(t,
		&pairTotal{Project: "beta", Machine: "MILL", Total: dec("10"), Initial: dec("0")},
		&pairTotal{Project: "alpha", Machine: "LATHE", Total: dec("10"), Initial: dec("0")},
	)

	entries := trackProgress(days, nil, totals)
	if entries[0].Project != "beta" || entries[1].Project != "alpha" {
		t.Errorf("progress entries must keep first-seen pair order, got %s then %s", entries[0].Project, entries[1].Project)
	}
}
