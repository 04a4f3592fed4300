// Package domain contains the core entities of the machina engine:
// the validated machine graph (states, transitions), the simulation
// snapshot, and the sentinel errors shared by the compiler, analyzer,
// simulator and serializer.
//
// All identifiers (state ids, event names, guard and action names)
// are opaque strings. A MachineGraph is built once by the compiler
// and never mutated afterwards; SimulationState values handed out by
// the engine are always deep copies, so holders can never corrupt
// engine-internal state.
package domain
