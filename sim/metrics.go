// Tracks run-wide scheduling metrics such as makespan and unit utilization.

package sim

import "fmt"

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for comparing priority heuristics and machine configurations.
type Metrics struct {
	DispatchedInstructions int   // number of instructions dispatched
	Makespan               int64 // cycles until the last instruction completed
	ALUBusyCycles          int64 // machine-cycles the ALU pool spent busy
	FPUBusyCycles          int64 // machine-cycles the FPU pool spent busy
	MemoryBusyCycles       int64 // machine-cycles the memory pool spent busy
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveCycle integrates per-pool busy machine counts for one cycle.
func (m *Metrics) ObserveCycle(aluBusy, fpuBusy, memoryBusy int) {
	m.ALUBusyCycles += int64(aluBusy)
	m.FPUBusyCycles += int64(fpuBusy)
	m.MemoryBusyCycles += int64(memoryBusy)
}

// Finalize derives the end-of-run aggregates from the instruction arena.
// Makespan counts cycles 0..maxEndCycle inclusive.
func (m *Metrics) Finalize(instrs []*Instruction) {
	for _, in := range instrs {
		if in.StartCycle != CycleUnset {
			m.DispatchedInstructions++
		}
		if in.EndCycle != CycleUnset && in.EndCycle+1 > m.Makespan {
			m.Makespan = in.EndCycle + 1
		}
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(cfg MachineConfig) {
	fmt.Println("=== Schedule Metrics ===")
	fmt.Printf("Dispatched Instructions : %d\n", m.DispatchedInstructions)
	fmt.Printf("Makespan                : %d cycles\n", m.Makespan)
	if m.Makespan > 0 {
		fmt.Printf("ALU Utilization         : %.2f%%\n",
			100*float64(m.ALUBusyCycles)/float64(m.Makespan*int64(cfg.ALUUnits)))
		fmt.Printf("FPU Utilization         : %.2f%%\n",
			100*float64(m.FPUBusyCycles)/float64(m.Makespan*int64(cfg.FPUUnits)))
		fmt.Printf("Memory Utilization      : %.2f%%\n",
			100*float64(m.MemoryBusyCycles)/float64(m.Makespan*int64(cfg.MemoryUnits)))
	}
}
