package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lseveri/shiftplan/pkg/application/dto"
	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// Config holds configuration for report generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	PlanTime  time.Duration
}

// Generate renders plan results in the specified format
func Generate(results []*dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(results, config)
	case "json":
		return generateJSONOutput(results, config)
	case "csv":
		return generateCSVOutput(results, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

const absentMarker = "absent"

// generateTextOutput prints the human-readable weekly plans to stdout.
func generateTextOutput(results []*dto.PlanResult, config Config) error {
	for _, result := range results {
		fmt.Printf("Week %d (%s)\n", result.WeekNumber, result.Week)
		fmt.Printf("=============\n\n")

		fmt.Printf("Operator schedule (shift length %s h):\n", result.ShiftHours)
		fmt.Printf("%-22s %-6s", "Operator", "Shift")
		for _, day := range result.Days {
			fmt.Printf(" %-26s", day)
		}
		fmt.Println()

		for _, schedule := range result.Schedules {
			fmt.Printf("%-22s %-6s", schedule.Operator, schedule.Shift)
			for _, slot := range schedule.Slots {
				fmt.Printf(" %-26s", slotCell(slot))
			}
			fmt.Println()
		}
		fmt.Println()

		fmt.Printf("Weekly progress (per project/machine):\n")
		fmt.Printf("%-12s %-12s", "Project", "Machine")
		for _, day := range result.Days {
			fmt.Printf(" %-10s", day)
		}
		fmt.Printf(" %-6s\n", "Ready")

		for _, p := range result.Progress {
			fmt.Printf("%-12s %-12s", p.Project, p.Machine)
			for _, v := range p.Daily {
				fmt.Printf(" %-10s", v.StringFixed(0)+"%")
			}
			fmt.Printf(" %-6s\n", readyText(p.Ready))
		}
		fmt.Println()
	}

	if config.Verbose {
		fmt.Printf("Planned %d week(s) in %v\n", len(results), config.PlanTime)
	}
	return nil
}

func slotCell(slot entities.Assignment) string {
	if !slot.Working {
		return absentMarker
	}
	return fmt.Sprintf("%s %s #%d: %s", slot.Machine, slot.Project, slot.Step, slot.Produced.StringFixed(0))
}

func readyText(ready bool) string {
	if ready {
		return "YES"
	}
	return "NO"
}

// generateJSONOutput marshals the results to stdout or a file.
func generateJSONOutput(results []*dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(struct {
		Weeks []*dto.PlanResult `json:"weeks"`
	}{Weeks: results}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "plan.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("JSON plan saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes one schedule and one progress file per week.
func generateCSVOutput(results []*dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, result := range results {
		scheduleFile := filepath.Join(config.OutputDir, fmt.Sprintf("schedule_%s.csv", result.Week))
		if err := writeScheduleCSV(result, scheduleFile); err != nil {
			return fmt.Errorf("failed to write schedule CSV: %w", err)
		}

		progressFile := filepath.Join(config.OutputDir, fmt.Sprintf("progress_%s.csv", result.Week))
		if err := writeProgressCSV(result, progressFile); err != nil {
			return fmt.Errorf("failed to write progress CSV: %w", err)
		}

		if config.Verbose {
			fmt.Printf("CSV plan saved to: %s, %s\n", scheduleFile, progressFile)
		}
	}
	return nil
}

func writeScheduleCSV(result *dto.PlanResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"operator", "shift", "day", "machine", "project", "step", "produced"}); err != nil {
		return err
	}
	for _, schedule := range result.Schedules {
		for _, slot := range schedule.Slots {
			row := []string{schedule.Operator, string(schedule.Shift), string(slot.Day)}
			if slot.Working {
				row = append(row, slot.Machine, string(slot.Project), fmt.Sprintf("%d", slot.Step), slot.Produced.String())
			} else {
				row = append(row, absentMarker, absentMarker, "", "0")
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func writeProgressCSV(result *dto.PlanResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"project", "machine"}
	for _, day := range result.Days {
		header = append(header, string(day))
	}
	header = append(header, "ready")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range result.Progress {
		row := []string{string(p.Project), p.Machine}
		for _, v := range p.Daily {
			row = append(row, v.StringFixed(0))
		}
		row = append(row, readyText(p.Ready))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
