package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/application/services/planner"
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/infrastructure/config"
	"github.com/lseveri/shiftplan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	demandRepo := memory.NewDemandRepository()
	routingRepo := memory.NewRoutingRepository()
	rosterRepo := memory.NewRosterRepository()
	stockRepo := memory.NewStockRepository()

	// Set up a small two-project shop
	setupScenario(demandRepo, routingRepo, rosterRepo, stockRepo)

	// Create the planner with the default week calendar
	svc := planner.New(config.Default().Calendar())

	fmt.Println("🏭 Planning production shifts...")
	fmt.Println()

	results, err := svc.PlanHorizon(ctx, 0, demandRepo, routingRepo, rosterRepo, stockRepo)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	for _, result := range results {
		fmt.Printf("📅 Week %s (run %s)\n", result.Week, result.RunID)
		fmt.Printf("  Shift requirements: %d\n", len(result.Requirements))
		for _, req := range result.Requirements {
			fmt.Printf("    %s step %d on %s: produce %s in %d shift slots\n",
				req.Project, req.Step+1, req.Machine,
				req.ToProduce.StringFixed(0), req.RequiredSlots)
		}

		fmt.Println("  Operator schedules:")
		for _, schedule := range result.Schedules {
			working := 0
			for _, slot := range schedule.Slots {
				if slot.Working {
					working++
				}
			}
			fmt.Printf("    %s (shift %s): %d of %d slots working\n",
				schedule.Operator, schedule.Shift, working, len(schedule.Slots))
		}

		fmt.Println("  End-of-week progress:")
		for _, entry := range result.Progress {
			status := "⚠️  short"
			if entry.Ready {
				status = "✅ ready"
			}
			last := entry.Daily[len(entry.Daily)-1]
			fmt.Printf("    %s / %s: %s%% %s\n",
				entry.Project, entry.Machine, last.StringFixed(0), status)
		}
		fmt.Println()
	}

	fmt.Println("✅ Planning complete!")
}

func setupScenario(
	demandRepo *memory.DemandRepository,
	routingRepo *memory.RoutingRepository,
	rosterRepo *memory.RosterRepository,
	stockRepo *memory.StockRepository,
) {
	demandRepo.LoadDemands([]*entities.WeeklyDemand{
		{Project: "GEARBOX", Week: "wk1", Quantity: decimal.NewFromInt(300)},
		{Project: "HOUSING", Week: "wk1", Quantity: decimal.NewFromInt(150)},
		{Project: "GEARBOX", Week: "wk2", Quantity: decimal.NewFromInt(200)},
	})

	routingRepo.LoadOperations([]*entities.Operation{
		{Project: "GEARBOX", OrderKey: "1", Machine: "LATHE", HourlyRate: decimal.NewFromInt(8), Workers: 1},
		{Project: "GEARBOX", OrderKey: "2", Machine: "MILL", HourlyRate: decimal.NewFromInt(6), Workers: 1},
		{Project: "GEARBOX", OrderKey: "final step", Machine: "ASSEMBLY", HourlyRate: decimal.NewFromInt(10), Workers: 3},
		{Project: "HOUSING", OrderKey: "1", Machine: "PRESS", HourlyRate: decimal.NewFromInt(12), Workers: 1},
	})

	rosterRepo.LoadOperators([]*entities.Operator{
		{Name: "Anna Keller", Shift: "1"},
		{Name: "Bruno Steiner", Shift: "2"},
		{Name: "Clara Meier", Shift: "C"},
		{Name: "David Roth", Shift: "C"},
		{Name: "Elena Brunner", Shift: "C"},
	})

	stockRepo.LoadStock([]*entities.StartingStock{
		{Project: "GEARBOX", Machine: "LATHE", Quantity: decimal.NewFromInt(50)},
	})
}
