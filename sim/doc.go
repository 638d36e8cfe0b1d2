// Package sim provides the core cycle-accurate list-scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the scheduling kernel:
//   - instruction.go: Instruction record (not-started → running → done) and derived status
//   - hazards.go: RAW/WAW/WAR dependency graph construction
//   - simulator.go: the per-cycle dispatch loop and functional-unit allocation
//
// # Architecture
//
// A run flows through three stages, all driven by the Simulator:
//   - BuildHazards turns the ordered instruction list into a forward-only
//     dependency graph (arena-indexed, adjacency in both directions),
//   - a PriorityPolicy (priority.go) assigns every instruction a static
//     dispatch priority before the clock starts,
//   - the dispatch loop greedily allocates free machines from the three
//     UnitPools (units.go) to ready instructions, lowest priority value
//     first, one simulated cycle at a time.
//
// The observable output is a trace.ScheduleTrace: for every cycle with at
// least one dispatch, the cycle number and the instructions that started.
//
// # Key Interfaces
//
// PriorityPolicy is the extension point for dispatch-order heuristics; two
// implementations ship with the package:
//   - CriticalPathPriority ("time"): latency-weighted longest path to a sink
//   - DependencyDepthPriority ("resource"): predecessor-chain depth
package sim
