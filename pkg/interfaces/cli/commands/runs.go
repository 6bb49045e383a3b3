package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lseveri/shiftplan/pkg/infrastructure/repositories/sqlite"
)

var (
	flagRunsArchive string
	flagRunID       string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived plan runs, or show the progress of one run",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsArchive, "archive", "", "sqlite database holding archived runs")
	runsCmd.Flags().StringVar(&flagRunID, "run", "", "show per-pair progress for one run ID")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if flagRunsArchive == "" {
		return fmt.Errorf("--archive is required")
	}

	archive, err := sqlite.Open(flagRunsArchive)
	if err != nil {
		return err
	}
	defer archive.Close()

	if flagRunID != "" {
		return printRunProgress(cmd, archive)
	}
	return printRunList(cmd, archive)
}

func printRunList(cmd *cobra.Command, archive *sqlite.Archive) error {
	runs, err := archive.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no archived runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tWEEK\t#\tCOMPUTED\tREADY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d/%d\n",
			run.ID, run.Week, run.WeekNumber,
			run.ComputedAt.Format("2006-01-02 15:04"),
			run.ReadyPairs, run.TotalPairs,
		)
	}
	return w.Flush()
}

func printRunProgress(cmd *cobra.Command, archive *sqlite.Archive) error {
	rows, err := archive.RunProgress(cmd.Context(), flagRunID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("run %q has no progress rows (unknown run ID?)", flagRunID)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT\tMACHINE\tFINAL %\tREADY")
	for _, row := range rows {
		ready := "NO"
		if row.Ready {
			ready = "YES"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Project, row.Machine, row.FinalPercent, ready)
	}
	return w.Flush()
}
