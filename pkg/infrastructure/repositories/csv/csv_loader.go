package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// Loader handles loading planner data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDemands loads the weekly demand matrix from a CSV file. The first
// column is the project; every further column whose header starts with "wk"
// (case-insensitive) is one week of demand. Other columns are ignored.
func (l *Loader) LoadDemands(filename string) ([]*entities.WeeklyDemand, error) {
	records, err := readAll(filename, "demand")
	if err != nil {
		return nil, err
	}

	header := records[0]
	type weekCol struct {
		index int
		label entities.WeekLabel
	}
	var weekCols []weekCol
	for i, col := range header[1:] {
		name := cleanCell(col)
		if strings.HasPrefix(strings.ToLower(name), "wk") {
			weekCols = append(weekCols, weekCol{index: i + 1, label: entities.WeekLabel(name)})
		}
	}
	if len(weekCols) == 0 {
		return nil, fmt.Errorf("demand CSV has no week columns (headers starting with \"wk\")")
	}

	var demands []*entities.WeeklyDemand
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("demand CSV row %d: expected %d columns, got %d", i+2, len(header), len(record))
		}
		project := entities.ProjectID(cleanCell(record[0]))
		for _, wc := range weekCols {
			qty, err := parseQuantity(record[wc.index])
			if err != nil {
				return nil, fmt.Errorf("demand CSV row %d, column %s: %w", i+2, wc.label, err)
			}
			demands = append(demands, &entities.WeeklyDemand{
				Project:  project,
				Week:     wc.label,
				Quantity: qty,
			})
		}
	}
	return demands, nil
}

// LoadRouting loads the operation table from a CSV file.
func (l *Loader) LoadRouting(filename string) ([]*entities.Operation, error) {
	records, err := readAll(filename, "routing")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"project", "operation_order", "machine", "hourly_rate", "workers_per_machine"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("routing CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var ops []*entities.Operation
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("routing CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		ops = append(ops, &entities.Operation{
			Project:  entities.ProjectID(cleanCell(record[0])),
			OrderKey: cleanCell(record[1]),
			Machine:  cleanCell(record[2]),
			// A rate that does not parse, or is negative, disables the
			// operation for scheduling instead of failing the load.
			HourlyRate: parseRate(record[3]),
			Workers:    parseWorkers(record[4]),
		})
	}
	return ops, nil
}

// LoadRoster loads the operator roster from a CSV file. The operator name is
// "Name Surname" as the plant writes it on the plan.
func (l *Loader) LoadRoster(filename string) ([]*entities.Operator, error) {
	records, err := readAll(filename, "roster")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"name", "surname", "shift"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("roster CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var operators []*entities.Operator
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("roster CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		name := strings.TrimSpace(cleanCell(record[0]) + " " + cleanCell(record[1]))
		if name == "" {
			return nil, fmt.Errorf("roster CSV row %d: operator name is empty", i+2)
		}
		operators = append(operators, &entities.Operator{
			Name:  name,
			Shift: entities.Shift(cleanCell(record[2])),
		})
	}
	return operators, nil
}

// LoadStock loads starting stock records from a CSV file.
func (l *Loader) LoadStock(filename string) ([]*entities.StartingStock, error) {
	records, err := readAll(filename, "starting stock")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"project", "machine", "starting_stock"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("starting stock CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var stock []*entities.StartingStock
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("starting stock CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		qty, err := parseQuantity(record[2])
		if err != nil {
			return nil, fmt.Errorf("starting stock CSV row %d: %w", i+2, err)
		}
		stock = append(stock, &entities.StartingStock{
			Project:  entities.ProjectID(cleanCell(record[0])),
			Machine:  cleanCell(record[1]),
			Quantity: qty,
		})
	}
	return stock, nil
}

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}
	return records, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(cleanCell(col), expected[i]) {
			return false
		}
	}
	return true
}

// cleanCell trims whitespace and the UTF-8 BOM spreadsheets like to prepend.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
}

func parseQuantity(s string) (decimal.Decimal, error) {
	v := cleanCell(s)
	if v == "" {
		return decimal.Zero, nil
	}
	qty, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quantity %q: %w", v, err)
	}
	if qty.IsNegative() {
		return decimal.Zero, fmt.Errorf("quantity %q must not be negative", v)
	}
	return qty, nil
}

func parseRate(s string) decimal.Decimal {
	rate, err := decimal.NewFromString(cleanCell(s))
	if err != nil || rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

func parseWorkers(s string) int {
	n, err := strconv.Atoi(cleanCell(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
