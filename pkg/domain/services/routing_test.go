package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

func op(project, orderKey, machine string) *entities.Operation {
	return &entities.Operation{
		Project:    entities.ProjectID(project),
		OrderKey:   orderKey,
		Machine:    machine,
		HourlyRate: decimal.NewFromInt(10),
		Workers:    1,
	}
}

func TestRoutingIndex_OrdersOperations(t *testing.T) {
	ix := NewRoutingIndex([]*entities.Operation{
		op("alpha", "final step", "PACK"),
		op("alpha", "2", "MILL"),
		op("alpha", "polish", "BENCH"),
		op("alpha", "1", "LATHE"),
	})

	ops := ix.OperationsFor("alpha")
	if len(ops) != 4 {
		t.Fatalf("expected 4 operations, got %d", len(ops))
	}

	wantMachines := []string{"LATHE", "MILL", "BENCH", "PACK"}
	for i, want := range wantMachines {
		if ops[i].Machine != want {
			t.Errorf("position %d: got machine %s, want %s", i, ops[i].Machine, want)
		}
	}
}

func TestRoutingIndex_StableOnTies(t *testing.T) {
	ix := NewRoutingIndex([]*entities.Operation{
		op("alpha", "1", "FIRST"),
		op("alpha", "1", "SECOND"),
		op("alpha", "1", "THIRD"),
	})

	ops := ix.OperationsFor("alpha")
	wantMachines := []string{"FIRST", "SECOND", "THIRD"}
	for i, want := range wantMachines {
		if ops[i].Machine != want {
			t.Errorf("position %d: got machine %s, want %s (ties must keep input order)", i, ops[i].Machine, want)
		}
	}
}

func TestRoutingIndex_ProjectMatchIsNormalized(t *testing.T) {
	ix := NewRoutingIndex([]*entities.Operation{
		op(" Alpha ", "1", "LATHE"),
	})

	if got := ix.OperationsFor("ALPHA"); len(got) != 1 {
		t.Errorf("expected normalized project match, got %d operations", len(got))
	}
}

func TestRoutingIndex_UnknownProjectIsEmpty(t *testing.T) {
	ix := NewRoutingIndex([]*entities.Operation{op("alpha", "1", "LATHE")})

	if got := ix.OperationsFor("beta"); len(got) != 0 {
		t.Errorf("expected empty list for unknown project, got %d operations", len(got))
	}
}
