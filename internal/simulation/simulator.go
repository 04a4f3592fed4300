package simulation

import (
	"fmt"
	"log/slog"

	"github.com/machina-fsm/machina/internal/logging"
	"github.com/machina-fsm/machina/pkg/domain"
)

// Simulator is the stateful wrapper around the pure transition
// function. It exclusively owns its SimulationState; every mutation
// replaces the whole state value, and every read hands out a deep
// copy. One simulator serves one logical caller; concurrent writers
// are not supported.
type Simulator struct {
	graph *domain.MachineGraph
	// initial is captured at construction and used by Reset, so a
	// reset restores the construction-time snapshot rather than
	// re-reading the graph.
	initial string
	guards  GuardEvaluator
	logger  *slog.Logger

	state domain.SimulationState
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithGuardEvaluator injects a guard evaluator. The default treats
// every guard as satisfied.
func WithGuardEvaluator(eval GuardEvaluator) Option {
	return func(s *Simulator) {
		if eval != nil {
			s.guards = eval
		}
	}
}

// WithLogger sets a structured logger for simulation events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulator seeds a simulator at the graph's initial state.
func NewSimulator(g *domain.MachineGraph, opts ...Option) *Simulator {
	s := &Simulator{
		graph:   g,
		initial: g.Initial,
		guards:  PermitAll,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = domain.NewSimulationState(s.initial)
	return s
}

// State returns a snapshot of the current simulation state.
func (s *Simulator) State() domain.SimulationState {
	return s.state.Clone()
}

// Send applies an event. On success the active state advances, the
// step counter increments and history grows by one. On failure only a
// log line is appended; an unrecognized event is never an error.
func (s *Simulator) Send(event string) domain.SimulationState {
	result := ComputeTransition(s.graph, s.state.ActiveStateID, event, s.guards)

	next := s.state.Clone()
	if result.OK {
		next.ActiveStateID = result.NextStateID
		next.Steps++
		next.History = append(next.History, result.NextStateID)
		next.Log = append(next.Log, fmt.Sprintf("Event '%s' -> Transitioned to '%s'", event, result.NextStateID))
		s.logger.Debug("transition", "event", event, "to", result.NextStateID, "step", next.Steps)
	} else {
		next.Log = append(next.Log, fmt.Sprintf("Event '%s' -> Failed: %s", event, result.Reason))
		s.logger.Debug("transition rejected", "event", event, "reason", string(result.Reason))
	}

	s.state = next
	return next.Clone()
}

// Reset restores the construction-time snapshot and notes the reset
// in a fresh log entry.
func (s *Simulator) Reset() domain.SimulationState {
	next := domain.NewSimulationState(s.initial)
	next.Log = append(next.Log, "Simulation reset")
	s.state = next
	s.logger.Debug("simulation reset", "initial", s.initial)
	return next.Clone()
}

// TimeTravel rewinds the simulation to a previous step. Out-of-range
// indexes are silently ignored and the unchanged snapshot is
// returned. An in-range index sets the active state to history[index],
// truncates history and log to index+1 entries and appends a log
// entry. Later history is irrevocably discarded; there is no redo.
func (s *Simulator) TimeTravel(index int) domain.SimulationState {
	if index < 0 || index >= len(s.state.History) {
		return s.state.Clone()
	}

	next := s.state.Clone()
	next.ActiveStateID = next.History[index]
	next.Steps = index
	next.History = next.History[:index+1]
	if len(next.Log) > index+1 {
		next.Log = next.Log[:index+1]
	}
	next.Log = append(next.Log, fmt.Sprintf("Time traveled to step %d", index))

	s.state = next
	s.logger.Debug("time travel", "step", index, "active", next.ActiveStateID)
	return next.Clone()
}

// AvailableEvents returns the events the active state can handle, in
// the node's edge order. Empty for final or exit-less states.
func (s *Simulator) AvailableEvents() []string {
	node, ok := s.graph.Node(s.state.ActiveStateID)
	if !ok {
		return nil
	}
	return node.Events()
}
