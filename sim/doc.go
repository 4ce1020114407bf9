// Package sim provides the core allocation-and-trust engine for trustbench.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - entity.go: WorkItem / Host abstractions and their utility functions
//   - strategy.go: the Strategy interface and the three decision procedures
//     (negotiation, greedy, random)
//   - simulation.go: the per-iteration loop (decide → trust → metrics → apply)
//
// # Architecture
//
// The sim package owns per-trial state; surrounding concerns live in
// sub-packages:
//   - sim/workload: YAML scenario specs, value samplers, population generation
//   - sim/bench: multi-trial benchmark runner and mean/std aggregation
//
// All randomness flows through PartitionedRNG (rng.go) so that a single master
// seed reproduces cost matrices, scenario populations, and random placements
// bit-for-bit.
package sim
