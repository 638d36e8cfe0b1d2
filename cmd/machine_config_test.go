package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
)

func writeMachineFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machines.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing machine file: %v", err)
	}
	return path
}

func TestGetMachineConfig_LoadsPreset(t *testing.T) {
	// GIVEN a machine file with a wide preset
	path := writeMachineFile(t, `
machines:
  wide:
    alu_units: 4
    fpu_units: 2
    memory_units: 2
    alu_clocks: 1
    fpu_clocks: 4
    memory_clocks: 3
`)

	// WHEN the preset is loaded
	cfg, err := GetMachineConfig(path, "wide")
	assert.NoError(t, err)

	// THEN counts and latencies come from the file
	want := sim.NewMachineConfig(4, 2, 2, sim.LatencyConfig{
		ALUClocks:    1,
		FPUClocks:    4,
		MemoryClocks: 3,
	})
	assert.Equal(t, want, *cfg)
}

func TestGetMachineConfig_ZeroClocksFallBackToDefaults(t *testing.T) {
	// GIVEN a preset that only names unit counts
	path := writeMachineFile(t, `
machines:
  default:
    alu_units: 2
    fpu_units: 1
    memory_units: 1
`)

	// WHEN the preset is loaded
	cfg, err := GetMachineConfig(path, "default")
	assert.NoError(t, err)

	// THEN latencies fall back to the standard clocks
	assert.Equal(t, sim.DefaultLatencies(), cfg.Latencies)
}

func TestGetMachineConfig_MissingPreset_Errors(t *testing.T) {
	path := writeMachineFile(t, "machines: {}\n")

	cfg, err := GetMachineConfig(path, "wide")

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, `machine preset "wide" not found`)
}

func TestGetMachineConfig_MissingFile_Errors(t *testing.T) {
	cfg, err := GetMachineConfig(filepath.Join(t.TempDir(), "absent.yaml"), "default")

	assert.Nil(t, cfg)
	assert.Error(t, err)
}
