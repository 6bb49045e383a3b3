package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lseveri/shiftplan/pkg/application/dto"
	"github.com/lseveri/shiftplan/pkg/application/services/planner"
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/infrastructure/config"
	"github.com/lseveri/shiftplan/pkg/infrastructure/events"
	"github.com/lseveri/shiftplan/pkg/infrastructure/logging"
	csvrepo "github.com/lseveri/shiftplan/pkg/infrastructure/repositories/csv"
	"github.com/lseveri/shiftplan/pkg/infrastructure/repositories/memory"
	"github.com/lseveri/shiftplan/pkg/infrastructure/repositories/sqlite"
	"github.com/lseveri/shiftplan/pkg/interfaces/cli/output"
)

var (
	flagScenario string
	flagDemand   string
	flagRouting  string
	flagRoster   string
	flagStock    string
	flagConfig   string
	flagWeek     string
	flagFormat   string
	flagOutput   string
	flagArchive  string
	flagVerbose  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute weekly plans from demand, routing, roster and stock CSVs",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&flagScenario, "scenario", "", "directory containing demand.csv, routing.csv, roster.csv and starting_stock.csv")
	planCmd.Flags().StringVar(&flagDemand, "demand", "", "path to the weekly demand CSV")
	planCmd.Flags().StringVar(&flagRouting, "routing", "", "path to the routing (operations) CSV")
	planCmd.Flags().StringVar(&flagRoster, "roster", "", "path to the operator roster CSV")
	planCmd.Flags().StringVar(&flagStock, "stock", "", "path to the starting stock CSV (optional)")
	planCmd.Flags().StringVar(&flagConfig, "config", "", "path to a shiftplan.toml config file")
	planCmd.Flags().StringVar(&flagWeek, "week", "", "plan a single week column (default: all, up to max_weeks)")
	planCmd.Flags().StringVar(&flagFormat, "format", "text", "output format: text, json, csv")
	planCmd.Flags().StringVar(&flagOutput, "output", "", "output directory for json/csv results")
	planCmd.Flags().StringVar(&flagArchive, "archive", "", "sqlite database to archive computed runs into")
	planCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(planCmd)
}

// shortfallLogger surfaces planning shortfalls on the log as they are found.
type shortfallLogger struct{}

func (shortfallLogger) CanHandle(eventType string) bool {
	return eventType == events.ShortfallIdentifiedEvent
}

func (shortfallLogger) Handle(event events.Event) error {
	if data, ok := event.Data().(events.ShortfallIdentified); ok {
		logging.Warn("planning shortfall",
			"project", data.Progress.Project,
			"machine", data.Progress.Machine,
		)
	}
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	logging.Init(flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	files, err := resolveInputFiles()
	if err != nil {
		return err
	}

	loader := csvrepo.NewLoader()

	demands, err := loader.LoadDemands(files.demand)
	if err != nil {
		return fmt.Errorf("error loading demand: %w", err)
	}
	ops, err := loader.LoadRouting(files.routing)
	if err != nil {
		return fmt.Errorf("error loading routing: %w", err)
	}
	roster, err := loader.LoadRoster(files.roster)
	if err != nil {
		return fmt.Errorf("error loading roster: %w", err)
	}

	var stock []*entities.StartingStock
	if files.stock != "" {
		stock, err = loader.LoadStock(files.stock)
		if err != nil {
			return fmt.Errorf("error loading starting stock: %w", err)
		}
	} else {
		// No stock file means every pair starts from zero.
		logging.Debug("no starting stock file, assuming zero stock")
	}

	logging.Info("inputs loaded",
		"demand_rows", len(demands),
		"routing_rows", len(ops),
		"operators", len(roster),
		"stock_rows", len(stock),
	)

	demandRepo := memory.NewDemandRepository()
	if err := demandRepo.LoadDemands(demands); err != nil {
		return fmt.Errorf("failed to load demand into repository: %w", err)
	}
	routingRepo := memory.NewRoutingRepository()
	if err := routingRepo.LoadOperations(ops); err != nil {
		return fmt.Errorf("failed to load routing into repository: %w", err)
	}
	rosterRepo := memory.NewRosterRepository()
	if err := rosterRepo.LoadOperators(roster); err != nil {
		return fmt.Errorf("failed to load roster into repository: %w", err)
	}
	stockRepo := memory.NewStockRepository()
	if err := stockRepo.LoadStock(stock); err != nil {
		return fmt.Errorf("failed to load stock into repository: %w", err)
	}

	store := events.NewInMemoryEventStore()
	if err := store.Subscribe([]string{events.ShortfallIdentifiedEvent}, shortfallLogger{}); err != nil {
		return fmt.Errorf("failed to subscribe shortfall logger: %w", err)
	}

	svc := planner.NewWithEvents(cfg.Calendar(), store)

	start := time.Now()
	results, err := planWeeks(cmd, svc, cfg, demandRepo, routingRepo, rosterRepo, stockRepo)
	if err != nil {
		return err
	}
	planTime := time.Since(start)

	if flagArchive != "" {
		if err := archiveRuns(cmd, results); err != nil {
			return err
		}
	}

	return output.Generate(results, output.Config{
		Format:    flagFormat,
		OutputDir: flagOutput,
		Verbose:   flagVerbose,
		PlanTime:  planTime,
	})
}

func planWeeks(
	cmd *cobra.Command,
	svc *planner.Service,
	cfg config.Config,
	demandRepo *memory.DemandRepository,
	routingRepo *memory.RoutingRepository,
	rosterRepo *memory.RosterRepository,
	stockRepo *memory.StockRepository,
) ([]*dto.PlanResult, error) {
	ctx := cmd.Context()

	if flagWeek == "" {
		return svc.PlanHorizon(ctx, cfg.MaxWeeks, demandRepo, routingRepo, rosterRepo, stockRepo)
	}

	weeks, err := demandRepo.Weeks()
	if err != nil {
		return nil, fmt.Errorf("failed to read week labels: %w", err)
	}
	for n, week := range weeks {
		if week == entities.WeekLabel(flagWeek) {
			result, err := svc.PlanWeek(ctx, week, n+1, demandRepo, routingRepo, rosterRepo, stockRepo)
			if err != nil {
				return nil, err
			}
			return []*dto.PlanResult{result}, nil
		}
	}
	return nil, fmt.Errorf("week %q not found in demand data (have %v)", flagWeek, weeks)
}

func archiveRuns(cmd *cobra.Command, results []*dto.PlanResult) error {
	archive, err := sqlite.Open(flagArchive)
	if err != nil {
		return err
	}
	defer archive.Close()

	for _, result := range results {
		if err := archive.SaveRun(cmd.Context(), result); err != nil {
			return fmt.Errorf("failed to archive %s: %w", result.Week, err)
		}
	}
	logging.Info("runs archived", "count", len(results), "path", flagArchive)
	return nil
}

type inputFiles struct {
	demand  string
	routing string
	roster  string
	stock   string
}

// resolveInputFiles combines the scenario directory with per-file overrides.
// The stock file is the only optional input.
func resolveInputFiles() (inputFiles, error) {
	files := inputFiles{
		demand:  flagDemand,
		routing: flagRouting,
		roster:  flagRoster,
		stock:   flagStock,
	}

	if flagScenario != "" {
		if files.demand == "" {
			files.demand = filepath.Join(flagScenario, "demand.csv")
		}
		if files.routing == "" {
			files.routing = filepath.Join(flagScenario, "routing.csv")
		}
		if files.roster == "" {
			files.roster = filepath.Join(flagScenario, "roster.csv")
		}
		if files.stock == "" {
			stockPath := filepath.Join(flagScenario, "starting_stock.csv")
			if _, err := os.Stat(stockPath); err == nil {
				files.stock = stockPath
			}
		}
	}

	if files.demand == "" || files.routing == "" || files.roster == "" {
		return inputFiles{}, fmt.Errorf("demand, routing and roster files are required (use --scenario or the individual flags)")
	}
	return files, nil
}
