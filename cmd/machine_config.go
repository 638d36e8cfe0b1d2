package cmd

import (
	"fmt"
	"os"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type MachineConfigFile struct {
	Machines map[string]Machine `yaml:"machines"`
}

type Machine struct {
	ALUUnits     int   `yaml:"alu_units"`
	FPUUnits     int   `yaml:"fpu_units"`
	MemoryUnits  int   `yaml:"memory_units"`
	ALUClocks    int64 `yaml:"alu_clocks"`
	FPUClocks    int64 `yaml:"fpu_clocks"`
	MemoryClocks int64 `yaml:"memory_clocks"`
}

// GetMachineConfig loads a named machine preset from a YAML file. Latency
// fields left at zero fall back to the default clocks (ALU 1, FPU 5,
// memory 2).
func GetMachineConfig(machineFilePath string, machineType string) (*sim.MachineConfig, error) {
	// Read YAML file
	data, err := os.ReadFile(machineFilePath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var cfg MachineConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	machine, machineExists := cfg.Machines[machineType]
	if !machineExists {
		return nil, fmt.Errorf("machine preset %q not found in %s", machineType, machineFilePath)
	}
	logrus.Infof("Using preset machine %v\n", machineType)

	latencies := sim.DefaultLatencies()
	if machine.ALUClocks > 0 {
		latencies.ALUClocks = machine.ALUClocks
	}
	if machine.FPUClocks > 0 {
		latencies.FPUClocks = machine.FPUClocks
	}
	if machine.MemoryClocks > 0 {
		latencies.MemoryClocks = machine.MemoryClocks
	}

	config := sim.NewMachineConfig(machine.ALUUnits, machine.FPUUnits, machine.MemoryUnits, latencies)
	return &config, nil
}
