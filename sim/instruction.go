// Defines the Instruction record that models a single instruction of the
// straight-line program being scheduled. Tracks operands, static priority,
// and start/end cycles; lifecycle status is derived, never stored.

package sim

import (
	"fmt"
)

// OpKind identifies the operation class of an instruction.
type OpKind int

const (
	OpAdd OpKind = iota
	OpMul
	OpFAdd
	OpFMul
	OpLoad
	OpStore
)

// String returns the assembly mnemonic for the operation kind.
func (op OpKind) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpFAdd:
		return "fadd"
	case OpFMul:
		return "fmul"
	case OpLoad:
		return "lw"
	case OpStore:
		return "sw"
	default:
		return fmt.Sprintf("OpKind(%d)", int(op))
	}
}

// InstrStatus represents the lifecycle state of an instruction.
type InstrStatus string

const (
	StatusNotStarted InstrStatus = "not-started"
	StatusRunning    InstrStatus = "running"
	StatusDone       InstrStatus = "done"
)

// CycleUnset marks a start or end cycle that has not been assigned yet.
const CycleUnset int64 = -1

// Instruction models a single instruction's journey through scheduling.
// Each instruction has:
// - identity (1-based program-order index, display label, operation kind)
// - operand name sets (Writes/Reads) used for hazard detection
// - a static priority assigned once before dispatch (lower = earlier)
// - start/end cycles set during simulation
type Instruction struct {
	Seq   int    // 1-based position in program order
	Label string // display label, typically the raw source line
	Op    OpKind

	Writes []string // destination operand names; for a store, the memory address operand
	Reads  []string // source operand names; for a store, the stored value operand

	Priority   int   // set once by a PriorityPolicy before dispatch begins
	StartCycle int64 // CycleUnset until dispatched
	EndCycle   int64 // CycleUnset until completed
}

// NewInstruction creates an instruction with both cycle fields unset.
func NewInstruction(seq int, label string, op OpKind, writes, reads []string) *Instruction {
	return &Instruction{
		Seq:        seq,
		Label:      label,
		Op:         op,
		Writes:     writes,
		Reads:      reads,
		StartCycle: CycleUnset,
		EndCycle:   CycleUnset,
	}
}

// Status derives the lifecycle state from the two cycle fields. Status is a
// pure function of StartCycle and EndCycle so no stored state can disagree
// with the timestamps.
func (in *Instruction) Status() InstrStatus {
	if in.EndCycle != CycleUnset {
		return StatusDone
	}
	if in.StartCycle != CycleUnset {
		return StatusRunning
	}
	return StatusNotStarted
}

// This method returns a human-readable string representation of an Instruction.
func (in *Instruction) String() string {
	return fmt.Sprintf("%d: %s", in.Seq, in.Label)
}
