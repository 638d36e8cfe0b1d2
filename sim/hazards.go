// Builds the data-hazard dependency graph over a straight-line program.
// Edges always point forward in program order, so the graph is acyclic by
// construction and the priority relaxation passes are guaranteed to terminate.

package sim

import "slices"

// DependencyGraph holds the hazard edges in arena form: instructions are
// indexed by their position in Instrs, and Preds/Succs store adjacency as
// index lists (reverse and forward direction of the same edges).
type DependencyGraph struct {
	Instrs []*Instruction
	Preds  [][]int // Preds[i]: earlier instructions that i must wait for
	Succs  [][]int // Succs[j]: later instructions that wait for j
}

// BuildHazards scans the program for data hazards and records an edge j→i for
// every ordered pair (j earlier, i later) where:
//   - i reads an operand that j writes (RAW),
//   - i writes an operand that j also writes (WAW),
//   - i writes an operand that j reads (WAR).
//
// Each later instruction is compared against one earlier instruction at a
// time, never against a merged operand history. A pair that triggers several
// hazards contributes one edge per trigger; consumers of the graph tolerate
// the duplicates (relaxation is a fixpoint, readiness is an all-done test).
func BuildHazards(instrs []*Instruction) *DependencyGraph {
	g := &DependencyGraph{
		Instrs: instrs,
		Preds:  make([][]int, len(instrs)),
		Succs:  make([][]int, len(instrs)),
	}
	for i := range instrs {
		for j := 0; j < i; j++ {
			for _, operand := range instrs[i].Reads {
				if slices.Contains(instrs[j].Writes, operand) {
					g.addEdge(j, i) // RAW
				}
			}
			for _, operand := range instrs[i].Writes {
				if slices.Contains(instrs[j].Writes, operand) {
					g.addEdge(j, i) // WAW
				}
				if slices.Contains(instrs[j].Reads, operand) {
					g.addEdge(j, i) // WAR
				}
			}
		}
	}
	return g
}

// Len returns the number of instructions in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.Instrs)
}

func (g *DependencyGraph) addEdge(from, to int) {
	g.Preds[to] = append(g.Preds[to], from)
	g.Succs[from] = append(g.Succs[from], to)
}
