package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

var (
	// CLI flags for the simulated machine
	logLevel     string // Log verbosity level
	programPath  string // Path to the straight-line program to schedule
	priorityType string // Priority heuristic ("time" or "resource")
	aluUnits     int    // Number of integer ALUs
	fpuUnits     int    // Number of floating-point units
	memoryUnits  int    // Number of memory units
	aluClocks    int64  // ALU latency in cycles
	fpuClocks    int64  // FPU latency in cycles
	memoryClocks int64  // Memory latency in cycles

	// CLI flags for machine presets and output
	machineConfigPath string // YAML file with named machine presets
	machineName       string // Preset name inside the machine config file
	scheduleOutPath   string // Path for the JSON schedule dump (optional)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Cycle-accurate list-scheduling simulator for a small machine model",
}

// runCmd schedules one program using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule a program and print its dispatch trace",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if programPath == "" {
			logrus.Fatalf("Program file not provided. Exiting simulation.")
		}

		cfg := sim.NewMachineConfig(aluUnits, fpuUnits, memoryUnits, sim.LatencyConfig{
			ALUClocks:    aluClocks,
			FPUClocks:    fpuClocks,
			MemoryClocks: memoryClocks,
		})
		if machineConfigPath != "" {
			preset, err := GetMachineConfig(machineConfigPath, machineName)
			if err != nil {
				logrus.Fatalf("Unable to read machine config: %v", err)
			}
			cfg = *preset
		}

		instrs, err := ParseProgramFile(programPath)
		if err != nil {
			logrus.Fatalf("Unable to parse program %s: %v", programPath, err)
		}

		logrus.Infof("Starting simulation with %d instructions, alu=%d fpu=%d memory=%d, priority=%s",
			len(instrs), cfg.ALUUnits, cfg.FPUUnits, cfg.MemoryUnits, priorityType)

		// Initialize and run the simulator; configuration errors (including
		// an unknown priority heuristic) surface here, before scheduling.
		s, err := sim.NewSimulator(cfg, priorityType, instrs)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		tr := s.Run()

		PrintTrace(tr)
		s.Metrics.Print(cfg)

		if scheduleOutPath != "" {
			if err := WriteSchedule(scheduleOutPath, tr); err != nil {
				logrus.Fatalf("Unable to write schedule: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// PrintTrace writes the per-cycle dispatch trace to stdout:
// the cycle number, then one indented line per newly dispatched instruction.
func PrintTrace(tr *trace.ScheduleTrace) {
	for _, record := range tr.Records {
		fmt.Printf("time: %d\n", record.Cycle)
		for _, in := range record.Instructions {
			fmt.Printf("\t%d: %s\n", in.Seq, in.Label)
		}
	}
}

// WriteSchedule dumps the trace and its summary as JSON.
func WriteSchedule(path string, tr *trace.ScheduleTrace) error {
	out := struct {
		Records []trace.DispatchRecord `json:"records"`
		Summary *trace.TraceSummary    `json:"summary"`
	}{
		Records: tr.Records,
		Summary: trace.Summarize(tr),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&programPath, "program", "", "Path to the program file (one instruction per line)")
	runCmd.Flags().StringVar(&priorityType, "priority", "time", "Priority heuristic: time (critical path) or resource (dependency depth)")

	// Machine description
	runCmd.Flags().IntVar(&aluUnits, "alu-units", 2, "Number of integer ALUs")
	runCmd.Flags().IntVar(&fpuUnits, "fpu-units", 1, "Number of floating-point units")
	runCmd.Flags().IntVar(&memoryUnits, "memory-units", 1, "Number of memory units")
	runCmd.Flags().Int64Var(&aluClocks, "alu-clocks", 1, "ALU operation latency in cycles")
	runCmd.Flags().Int64Var(&fpuClocks, "fpu-clocks", 5, "FPU operation latency in cycles")
	runCmd.Flags().Int64Var(&memoryClocks, "memory-clocks", 2, "Memory operation latency in cycles")

	// Presets and output
	runCmd.Flags().StringVar(&machineConfigPath, "machine-config", "", "YAML file with named machine presets (overrides unit flags)")
	runCmd.Flags().StringVar(&machineName, "machine", "default", "Preset name inside the machine config file")
	runCmd.Flags().StringVar(&scheduleOutPath, "schedule-out", "", "Write the dispatch trace as JSON to this path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
