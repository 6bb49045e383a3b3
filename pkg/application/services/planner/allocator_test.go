package planner

import (
	"reflect"
	"testing"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

func TestAllocate_TwoOperatorsCoverBothSlots(t *testing.T) {
	// One operation, rate 10, demand 100 with stock 20: to_produce 80,
	// required slots ceil(80/75) = 2. One operator on each regular shift.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 2, "10", "80"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "2"),
	}

	assignments := allocate(fiveDayWeek(), reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 2 {
		t.Fatalf("expected exactly 2 working assignments, got %d", len(working))
	}
	if working[0].Operator != "Anna" || !working[0].Produced.Equal(dec("75")) {
		t.Errorf("first slot: got %s producing %s, want Anna producing 75", working[0].Operator, working[0].Produced)
	}
	if working[1].Operator != "Bruno" || !working[1].Produced.Equal(dec("5")) {
		t.Errorf("second slot: got %s producing %s, want Bruno producing min(75, remaining) = 5", working[1].Operator, working[1].Produced)
	}
	if working[0].Day != "Monday" || working[1].Day != "Monday" {
		t.Errorf("both slots should fill on Monday, got %s and %s", working[0].Day, working[1].Day)
	}
}

func TestAllocate_SingleOperatorShortfall(t *testing.T) {
	// Same operation on a one-day week with a single operator: only 1 of 2
	// required slots can be filled. Under-resourcing is not an error.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 2, "10", "80"),
	}
	roster := []*entities.Operator{operator("Anna", "1")}

	assignments := allocate(singleDayWeek("1", "2"), reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 1 {
		t.Fatalf("expected 1 working assignment, got %d", len(working))
	}
	if !working[0].Produced.Equal(dec("75")) {
		t.Errorf("produced = %s, want 75", working[0].Produced)
	}
}

func TestAllocate_NeverExceedsRequiredSlots(t *testing.T) {
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 2, "10", "80"),
	}
	// Plenty of operators across the week; the operation must still receive
	// exactly its required slots.
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "1"),
		operator("Carla", "2"),
		operator("Dario", "2"),
	}

	working := workingOnly(allocate(fiveDayWeek(), reqs, roster))
	if len(working) != 2 {
		t.Errorf("expected 2 working assignments (required slots), got %d", len(working))
	}
}

func TestAllocate_OneAssignmentPerOperationPerRegularShift(t *testing.T) {
	// Worker capacity > 1 must not matter on regular shifts.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 3, 5, "1", "100"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "1"),
	}

	assignments := allocate(singleDayWeek("1"), reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 1 {
		t.Fatalf("expected 1 working assignment on a regular shift, got %d", len(working))
	}
	if working[0].Operator != "Anna" {
		t.Errorf("roster order decides who works: got %s, want Anna", working[0].Operator)
	}
}

func TestAllocate_SpecialShiftUsesWorkerCapacity(t *testing.T) {
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "PRESS", 0, 3, 5, "2", "100"),
	}
	roster := []*entities.Operator{
		operator("Anna", "C"),
		operator("Bruno", "C"),
		operator("Carla", "C"),
		operator("Dario", "C"),
	}

	assignments := allocate(singleDayWeek("C"), reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 3 {
		t.Fatalf("expected 3 working assignments (worker capacity), got %d", len(working))
	}
	// 2 * 7.5 = 15 per shift; remaining decrements sequentially.
	for i, want := range []string{"15", "15", "15"} {
		if !working[i].Produced.Equal(dec(want)) {
			t.Errorf("assignment %d produced %s, want %s", i, working[i].Produced, want)
		}
	}

	absent := 0
	for _, a := range assignments {
		if !a.Working {
			absent++
		}
	}
	if absent != 1 {
		t.Errorf("expected the fourth operator marked absent, got %d absent records", absent)
	}
}

func TestAllocate_SpecialShiftPrefersHighCapacityStations(t *testing.T) {
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 5, "10", "500"),
		requirement("beta", "PRESS", 0, 2, 5, "10", "500"),
	}
	roster := []*entities.Operator{operator("Anna", "C")}

	working := workingOnly(allocate(singleDayWeek("C"), reqs, roster))

	if len(working) != 1 {
		t.Fatalf("expected 1 working assignment, got %d", len(working))
	}
	if working[0].Project != "beta" {
		t.Errorf("the scarce operator should go to the higher-capacity station first, got project %s", working[0].Project)
	}
}

func TestAllocate_MachineExclusivityBlocksSpecialShift(t *testing.T) {
	// Both projects route over the same machine. Once a regular shift used
	// it on a day, the special shift may not touch it that day.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "SHARED", 0, 1, 1, "10", "75"),
		requirement("beta", "SHARED", 0, 1, 1, "10", "75"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "C"),
	}

	assignments := allocate(fiveDayWeek(), reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 2 {
		t.Fatalf("expected 2 working assignments, got %d", len(working))
	}

	// Monday: Anna takes alpha on shift 1; Bruno must sit out shift C even
	// though beta still needs a slot, because SHARED already ran on shift 1.
	if working[0].Day != "Monday" || working[0].Operator != "Anna" || working[0].Project != "alpha" {
		t.Errorf("unexpected first assignment: %+v", working[0])
	}
	for _, a := range assignments {
		if a.Shift == "C" && a.Working {
			t.Errorf("machine used on a regular shift must not run on shift C the same day: %+v", a)
		}
	}
	// Tuesday: shift 1 runs before C, so Anna picks up beta and blocks
	// SHARED again. The C operator never gets a turn on this machine.
	if working[1].Day != "Tuesday" || working[1].Operator != "Anna" || working[1].Project != "beta" {
		t.Errorf("unexpected second assignment: %+v", working[1])
	}
}

func TestAllocate_MachineExclusivityBlocksRegularShift(t *testing.T) {
	// With the special shift ordered first in the day, a machine it uses is
	// off limits for the regular shifts of the same day.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "SHARED", 0, 1, 2, "10", "150"),
	}
	roster := []*entities.Operator{
		operator("Anna", "C"),
		operator("Bruno", "1"),
	}

	cal := singleDayWeek("C", "1")
	assignments := allocate(cal, reqs, roster)
	working := workingOnly(assignments)

	if len(working) != 1 {
		t.Fatalf("expected 1 working assignment, got %d", len(working))
	}
	if working[0].Operator != "Anna" || working[0].Shift != "C" {
		t.Errorf("expected the special shift to take the machine, got %+v", working[0])
	}
	for _, a := range assignments {
		if a.Operator == "Bruno" && a.Working {
			t.Errorf("machine used on shift C must not also run on shift 1 the same day: %+v", a)
		}
	}
}

func TestAllocate_EveryOperatorHasOneRecordPerOwnShiftSlot(t *testing.T) {
	cal := fiveDayWeek()
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 3, "10", "200"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "2"),
		operator("Carla", "C"),
	}

	assignments := allocate(cal, reqs, roster)

	type slot struct {
		day   entities.Weekday
		shift entities.Shift
	}
	perOperator := make(map[string]map[slot]int)
	for _, a := range assignments {
		if perOperator[a.Operator] == nil {
			perOperator[a.Operator] = make(map[slot]int)
		}
		perOperator[a.Operator][slot{a.Day, a.Shift}]++
	}

	for _, op := range roster {
		slots := perOperator[op.Name]
		if len(slots) != len(cal.Days) {
			t.Errorf("%s: expected %d slots (one per day on own shift), got %d", op.Name, len(cal.Days), len(slots))
		}
		for s, n := range slots {
			if s.shift != op.Shift {
				t.Errorf("%s: record on foreign shift %s", op.Name, s.shift)
			}
			if n != 1 {
				t.Errorf("%s: %d records for slot %v, want exactly 1", op.Name, n, s)
			}
		}
	}
}

func TestAllocate_RemainingNeverNegative(t *testing.T) {
	// Required slots overshoot the quantity: the final assignment must
	// produce only what is left, and later ones zero.
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 2, "10", "80"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "2"),
	}

	working := workingOnly(allocate(fiveDayWeek(), reqs, roster))
	total := dec("0")
	for _, a := range working {
		if a.Produced.IsNegative() {
			t.Errorf("negative production: %+v", a)
		}
		if a.Produced.GreaterThan(dec("75")) {
			t.Errorf("production above one shift's output: %+v", a)
		}
		total = total.Add(a.Produced)
	}
	if !total.Equal(dec("80")) {
		t.Errorf("total produced = %s, want exactly the outstanding 80", total)
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	cal := fiveDayWeek()
	reqs := []entities.ShiftRequirement{
		requirement("alpha", "LATHE", 0, 1, 3, "10", "200"),
		requirement("alpha", "MILL", 1, 2, 4, "8", "220"),
		requirement("beta", "PRESS", 0, 2, 2, "12", "150"),
	}
	roster := []*entities.Operator{
		operator("Anna", "1"),
		operator("Bruno", "1"),
		operator("Carla", "2"),
		operator("Dario", "C"),
		operator("Elena", "C"),
	}

	first := allocate(cal, reqs, roster)
	second := allocate(cal, reqs, roster)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield an identical assignment set")
	}
}
