package cmd

// Parses straight-line assembly programs into the instruction list consumed
// by the sim package. One instruction per line:
//
//	add rd rs1 rs2    mul rd rs1 rs2    fadd rd rs1 rs2    fmul rd rs1 rs2
//	lw  rd addr       sw  rs addr
//
// For a store, the memory address operand is the written location and the
// stored value is the read operand. Blank lines and lines starting with '#'
// are skipped. The raw line becomes the instruction's display label.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
)

// ParseProgramFile reads a program file and returns its instruction list.
func ParseProgramFile(path string) ([]*sim.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseProgram(f)
}

// ParseProgram reads instruction lines from r. Sequence numbers are 1-based
// in input order, counting only instruction lines.
func ParseProgram(r io.Reader) ([]*sim.Instruction, error) {
	var instrs []*sim.Instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := parseLine(len(instrs)+1, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		instrs = append(instrs, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instrs, nil
}

// parseLine parses a single instruction line into an Instruction with the
// given sequence number.
func parseLine(seq int, line string) (*sim.Instruction, error) {
	fields := strings.Fields(line)
	mnemonic := fields[0]

	var op sim.OpKind
	var writes, reads []string
	switch mnemonic {
	case "add", "mul", "fadd", "fmul":
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s expects 3 operands, got %d", mnemonic, len(fields)-1)
		}
		switch mnemonic {
		case "add":
			op = sim.OpAdd
		case "mul":
			op = sim.OpMul
		case "fadd":
			op = sim.OpFAdd
		case "fmul":
			op = sim.OpFMul
		}
		writes = []string{fields[1]}
		reads = []string{fields[2], fields[3]}
	case "lw":
		if len(fields) != 3 {
			return nil, fmt.Errorf("lw expects 2 operands, got %d", len(fields)-1)
		}
		op = sim.OpLoad
		writes = []string{fields[1]}
		reads = []string{fields[2]}
	case "sw":
		if len(fields) != 3 {
			return nil, fmt.Errorf("sw expects 2 operands, got %d", len(fields)-1)
		}
		// the "written" location is the memory address operand; the stored
		// value is the read operand
		op = sim.OpStore
		writes = []string{fields[2]}
		reads = []string{fields[1]}
	default:
		return nil, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}

	return sim.NewInstruction(seq, line, op, writes, reads), nil
}
