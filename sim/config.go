package sim

import "fmt"

// LatencyConfig groups the per-class operation latencies, in cycles.
type LatencyConfig struct {
	ALUClocks    int64 // add, mul
	FPUClocks    int64 // fadd, fmul
	MemoryClocks int64 // lw, sw
}

// DefaultLatencies returns the standard machine latencies:
// ALU 1 cycle, FPU 5 cycles, memory 2 cycles.
func DefaultLatencies() LatencyConfig {
	return LatencyConfig{ALUClocks: 1, FPUClocks: 5, MemoryClocks: 2}
}

// Clocks returns the latency of the unit class that executes op.
func (lc LatencyConfig) Clocks(op OpKind) int64 {
	switch op {
	case OpAdd, OpMul:
		return lc.ALUClocks
	case OpFAdd, OpFMul:
		return lc.FPUClocks
	default:
		return lc.MemoryClocks
	}
}

// MachineConfig groups the functional-unit counts and latencies of the
// simulated machine. It is passed into the Simulator at construction;
// there is no process-wide machine state.
type MachineConfig struct {
	ALUUnits    int // number of integer ALUs (must be > 0)
	FPUUnits    int // number of floating-point units (must be > 0)
	MemoryUnits int // number of memory units (must be > 0)
	Latencies   LatencyConfig
}

// NewMachineConfig groups unit counts and latencies into a MachineConfig.
func NewMachineConfig(aluUnits, fpuUnits, memoryUnits int, latencies LatencyConfig) MachineConfig {
	return MachineConfig{
		ALUUnits:    aluUnits,
		FPUUnits:    fpuUnits,
		MemoryUnits: memoryUnits,
		Latencies:   latencies,
	}
}

// DefaultMachineConfig returns the standard machine: 2 ALUs, 1 FPU,
// 1 memory unit, default latencies.
func DefaultMachineConfig() MachineConfig {
	return NewMachineConfig(2, 1, 1, DefaultLatencies())
}

// Validate checks that every unit count and latency is positive.
func (mc MachineConfig) Validate() error {
	if mc.ALUUnits <= 0 || mc.FPUUnits <= 0 || mc.MemoryUnits <= 0 {
		return fmt.Errorf("unit counts must be positive: alu=%d fpu=%d memory=%d",
			mc.ALUUnits, mc.FPUUnits, mc.MemoryUnits)
	}
	if mc.Latencies.ALUClocks <= 0 || mc.Latencies.FPUClocks <= 0 || mc.Latencies.MemoryClocks <= 0 {
		return fmt.Errorf("latencies must be positive: alu=%d fpu=%d memory=%d",
			mc.Latencies.ALUClocks, mc.Latencies.FPUClocks, mc.Latencies.MemoryClocks)
	}
	return nil
}
