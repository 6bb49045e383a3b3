package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shiftplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 7.5, cfg.ShiftHours)
	assert.Len(t, cfg.Days, 5)
	assert.Equal(t, []string{"1", "2", "C"}, cfg.Shifts)
	assert.Equal(t, "C", cfg.SpecialShift)
	assert.Equal(t, 5, cfg.MaxWeeks)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, `shift_hours = 8.0`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.ShiftHours)
	assert.Equal(t, Default().Days, cfg.Days)
	assert.Equal(t, Default().Shifts, cfg.Shifts)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
shift_hours = 6.0
days = ["Mon", "Tue", "Wed"]
shifts = ["A", "B", "N"]
special_shift = "N"
max_weeks = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, cfg.ShiftHours)
	assert.Equal(t, []string{"Mon", "Tue", "Wed"}, cfg.Days)
	assert.Equal(t, "N", cfg.SpecialShift)
	assert.Equal(t, 2, cfg.MaxWeeks)
}

func TestLoad_SpecialShiftMustBeInShiftList(t *testing.T) {
	path := writeConfig(t, `
shifts = ["1", "2"]
special_shift = "X"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "special shift")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestCalendar(t *testing.T) {
	cal := Default().Calendar()

	assert.Len(t, cal.Days, 5)
	assert.Equal(t, 15, cal.Slots())
	assert.Equal(t, "7.5", cal.ShiftHours.String())
	assert.EqualValues(t, "C", cal.SpecialShift)
}
