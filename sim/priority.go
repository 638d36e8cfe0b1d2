package sim

import (
	"fmt"
)

// PriorityPolicy assigns a static dispatch priority to every instruction in
// the graph. Lower values dispatch first. Priorities are computed once over
// the full instruction set before dispatch begins and never recomputed during
// simulation. Implementations MUST be insensitive to duplicate hazard edges.
type PriorityPolicy interface {
	Assign(g *DependencyGraph, lat LatencyConfig)
}

// CriticalPathPriority implements the "time" heuristic: an instruction's
// priority is the negative of the longest latency-weighted path from it to a
// sink, where an edge A→B is weighted by A's own operation latency. The
// longer the chain of dependent work ahead of an instruction, the earlier it
// dispatches.
type CriticalPathPriority struct{}

// Assign relaxes priorities over successor edges to a fixpoint
// (Bellman-Ford). Edges only point forward in program order, so the graph is
// acyclic and at most len(g.Instrs) passes are needed.
func (CriticalPathPriority) Assign(g *DependencyGraph, lat LatencyConfig) {
	// set the time of executing myself as the initial value
	for _, in := range g.Instrs {
		in.Priority = -int(lat.Clocks(in.Op))
	}

	for updated := true; updated; {
		updated = false
		for i, in := range g.Instrs {
			clocks := int(lat.Clocks(in.Op))
			for _, s := range g.Succs[i] {
				if next := g.Instrs[s]; in.Priority > next.Priority-clocks {
					in.Priority = next.Priority - clocks
					updated = true
				}
			}
		}
	}
}

// DependencyDepthPriority implements the "resource" heuristic: an
// instruction's priority is the negative of the longest chain of predecessors
// above it, counting hops and ignoring latencies.
type DependencyDepthPriority struct{}

// Assign relaxes priorities over predecessor edges to a fixpoint.
func (DependencyDepthPriority) Assign(g *DependencyGraph, _ LatencyConfig) {
	for _, in := range g.Instrs {
		in.Priority = -1
	}

	for updated := true; updated; {
		updated = false
		for i, in := range g.Instrs {
			for _, p := range g.Preds[i] {
				if pred := g.Instrs[p]; in.Priority > pred.Priority-1 {
					in.Priority = pred.Priority - 1
					updated = true
				}
			}
		}
	}
}

// Priority heuristic names accepted by NewPriorityPolicy.
const (
	PriorityTime     = "time"     // critical-path length, latency weighted
	PriorityResource = "resource" // dependency-graph depth, hop counted
)

// NewPriorityPolicy creates a PriorityPolicy by name. An unknown name is a
// configuration error surfaced to the caller before any scheduling work.
func NewPriorityPolicy(name string) (PriorityPolicy, error) {
	switch name {
	case PriorityTime:
		return CriticalPathPriority{}, nil
	case PriorityResource:
		return DependencyDepthPriority{}, nil
	default:
		return nil, fmt.Errorf("invalid priority type %q: must be %q or %q",
			name, PriorityTime, PriorityResource)
	}
}
