// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

// Simulator is the core object that holds simulated time, the three
// functional-unit pools, and the dispatch loop state. The simulation is
// single-threaded and synchronous: parallel issue within a cycle is modeled,
// never real. The pools are exclusively owned and mutated here.
type Simulator struct {
	Clock int64

	alu    *UnitPool
	fpu    *UnitPool
	memory *UnitPool

	graph *DependencyGraph
	lat   LatencyConfig

	policy PriorityPolicy

	// waiting holds indices of instructions with at least one incomplete
	// predecessor; ready holds dependency-free instructions ordered by
	// priority; dispatched accumulates every instruction ever started,
	// in dispatch order.
	waiting    []int
	ready      *readyHeap
	dispatched []int

	Metrics *Metrics
	Trace   *trace.ScheduleTrace
}

// NewSimulator wires a simulator for one program under the given machine
// description. The machine configuration and the priority heuristic name are
// validated here, before any scheduling work begins.
func NewSimulator(cfg MachineConfig, priorityType string, instrs []*Instruction) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := NewPriorityPolicy(priorityType)
	if err != nil {
		return nil, err
	}

	graph := BuildHazards(instrs)
	s := &Simulator{
		alu:        NewUnitPool(cfg.ALUUnits, cfg.Latencies.ALUClocks),
		fpu:        NewUnitPool(cfg.FPUUnits, cfg.Latencies.FPUClocks),
		memory:     NewUnitPool(cfg.MemoryUnits, cfg.Latencies.MemoryClocks),
		graph:      graph,
		lat:        cfg.Latencies,
		policy:     policy,
		waiting:    make([]int, 0, len(instrs)),
		ready:      newReadyHeap(instrs),
		dispatched: make([]int, 0, len(instrs)),
		Metrics:    NewMetrics(),
		Trace:      trace.NewScheduleTrace(),
	}
	for i := range instrs {
		s.waiting = append(s.waiting, i)
	}
	return s, nil
}

// Graph exposes the hazard graph built for the program.
func (s *Simulator) Graph() *DependencyGraph {
	return s.graph
}

// pool returns the functional-unit pool that executes op.
func (s *Simulator) pool(op OpKind) *UnitPool {
	switch op {
	case OpAdd, OpMul:
		return s.alu
	case OpFAdd, OpFMul:
		return s.fpu
	default:
		return s.memory
	}
}

// Run assigns priorities, then advances the clock cycle by cycle until every
// instruction has been dispatched and has retired. It returns the dispatch
// trace: one record per cycle in which at least one instruction started.
func (s *Simulator) Run() *trace.ScheduleTrace {
	s.policy.Assign(s.graph, s.lat)
	for _, in := range s.graph.Instrs {
		logrus.Debugf("%s: priority %d", in, in.Priority)
	}

	s.refreshReady()
	for len(s.waiting) > 0 || s.ready.Len() > 0 {
		s.step(s.Clock)
		s.Clock++
	}

	// Everything has been dispatched; keep retiring until the last
	// instruction completes so every end cycle and busy count is final.
	for s.runningCount() > 0 {
		s.retire(s.Clock)
		s.Clock++
	}

	s.Metrics.Finalize(s.graph.Instrs)
	logrus.Infof("[cycle %04d] simulation ended", s.Clock)
	return s.Trace
}

// step executes one simulated cycle: the dispatch pass, then latency
// completion, resource release, and the ready-set refresh.
func (s *Simulator) step(t int64) {
	// Dispatch pass: walk the ready heap in priority order. A full pool only
	// skips its own instruction; later entries may target other pools, so the
	// walk never stops early.
	var skipped []int
	record := trace.DispatchRecord{Cycle: t}
	for s.ready.Len() > 0 {
		idx := s.ready.pop()
		in := s.graph.Instrs[idx]
		pool := s.pool(in.Op)
		if pool.Full() {
			skipped = append(skipped, idx)
			continue
		}
		m := pool.Allocate(t)
		in.StartCycle = t
		s.dispatched = append(s.dispatched, idx)
		record.Instructions = append(record.Instructions, trace.DispatchedInstr{
			Seq:      in.Seq,
			Label:    in.Label,
			Priority: in.Priority,
		})
		logrus.Infof("[cycle %04d] dispatch %s on %s unit %d", t, in, in.Op, m)
	}
	for _, idx := range skipped {
		s.ready.push(idx)
	}

	if len(record.Instructions) > 0 {
		s.Trace.Record(record)
	}

	s.retire(t)
	s.refreshReady()
}

// retire applies the latency-completion check to every dispatched
// instruction, integrates busy counts into the metrics, and releases finished
// machines back to their pools. An instruction dispatched at cycle c with
// latency l completes at cycle c+l-1; completion becomes visible to the
// ready-set refresh of the same cycle.
func (s *Simulator) retire(t int64) {
	for _, idx := range s.dispatched {
		in := s.graph.Instrs[idx]
		if in.EndCycle == CycleUnset && t == in.StartCycle+s.lat.Clocks(in.Op)-1 {
			in.EndCycle = t
			logrus.Debugf("[cycle %04d] complete %s", t, in)
		}
	}

	// Machines that finish at t were busy during t; observe before releasing.
	s.Metrics.ObserveCycle(s.alu.Busy(), s.fpu.Busy(), s.memory.Busy())

	s.alu.Release(t)
	s.fpu.Release(t)
	s.memory.Release(t)
}

// refreshReady moves every waiting instruction whose predecessors are all
// Done into the ready heap.
func (s *Simulator) refreshReady() {
	remaining := s.waiting[:0]
	for _, idx := range s.waiting {
		readyNow := true
		for _, p := range s.graph.Preds[idx] {
			if s.graph.Instrs[p].Status() != StatusDone {
				// not ready to dispatch while a predecessor is unfinished
				readyNow = false
				break
			}
		}
		if readyNow {
			s.ready.push(idx)
		} else {
			remaining = append(remaining, idx)
		}
	}
	s.waiting = remaining
}

// runningCount returns the number of dispatched instructions that have not
// completed yet.
func (s *Simulator) runningCount() int {
	n := 0
	for _, idx := range s.dispatched {
		if s.graph.Instrs[idx].Status() == StatusRunning {
			n++
		}
	}
	return n
}
