// Package config holds the planner calendar configuration, loaded from a
// TOML file with sensible plant defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/lseveri/shiftplan/pkg/domain/entities"
)

// Config is the planner configuration as stored in shiftplan.toml.
type Config struct {
	// ShiftHours is the working length of one shift in hours.
	ShiftHours float64 `toml:"shift_hours"`
	// Days are the planning days in week order.
	Days []string `toml:"days"`
	// Shifts are the shift labels in processing order within a day.
	Shifts []string `toml:"shifts"`
	// SpecialShift is the multi-worker shift subject to machine exclusivity
	// against the other shifts.
	SpecialShift string `toml:"special_shift"`
	// MaxWeeks caps how many demand columns are planned. 0 means no cap.
	MaxWeeks int `toml:"max_weeks"`
}

// Default returns the standard plant configuration: five weekdays, shifts
// 1/2/C with C as the multi-worker night shift, 7.5-hour shifts, five weeks.
func Default() Config {
	return Config{
		ShiftHours:   7.5,
		Days:         []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		Shifts:       []string{"1", "2", "C"},
		SpecialShift: "C",
		MaxWeeks:     5,
	}
}

// Load reads a TOML config file. Fields left empty fall back to defaults.
// An empty path returns the defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fileCfg.ShiftHours > 0 {
		cfg.ShiftHours = fileCfg.ShiftHours
	}
	if len(fileCfg.Days) > 0 {
		cfg.Days = fileCfg.Days
	}
	if len(fileCfg.Shifts) > 0 {
		cfg.Shifts = fileCfg.Shifts
	}
	if fileCfg.SpecialShift != "" {
		cfg.SpecialShift = fileCfg.SpecialShift
	}
	if fileCfg.MaxWeeks > 0 {
		cfg.MaxWeeks = fileCfg.MaxWeeks
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks internal consistency of the configuration.
func (c Config) Validate() error {
	if c.ShiftHours <= 0 {
		return fmt.Errorf("shift_hours must be positive, got %v", c.ShiftHours)
	}
	if len(c.Days) == 0 {
		return fmt.Errorf("at least one planning day is required")
	}
	if len(c.Shifts) == 0 {
		return fmt.Errorf("at least one shift is required")
	}
	for _, s := range c.Shifts {
		if s == c.SpecialShift {
			return nil
		}
	}
	return fmt.Errorf("special shift %q is not in the shift list %v", c.SpecialShift, c.Shifts)
}

// Calendar converts the configuration into the domain week grid.
func (c Config) Calendar() entities.WeekCalendar {
	days := make([]entities.Weekday, len(c.Days))
	for i, d := range c.Days {
		days[i] = entities.Weekday(d)
	}
	shifts := make([]entities.Shift, len(c.Shifts))
	for i, s := range c.Shifts {
		shifts[i] = entities.Shift(s)
	}
	return entities.WeekCalendar{
		Days:         days,
		Shifts:       shifts,
		SpecialShift: entities.Shift(c.SpecialShift),
		ShiftHours:   decimal.NewFromFloat(c.ShiftHours),
	}
}
