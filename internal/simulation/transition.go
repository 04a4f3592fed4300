// Package simulation executes deterministic event-driven runs over a
// compiled machine graph, with full history and time travel.
package simulation

import "github.com/machina-fsm/machina/pkg/domain"

// FailureReason classifies why an event produced no transition.
type FailureReason string

const (
	// ReasonInvalidEvent: the current state has no transition entry
	// for the event.
	ReasonInvalidEvent FailureReason = "INVALID_EVENT"
	// ReasonNoTransition: the current state id is absent from the
	// graph. Defensive; a validated graph never produces it.
	ReasonNoTransition FailureReason = "NO_TRANSITION"
)

// GuardEvaluator decides whether a guard condition identifier holds.
// The core never evaluates guard expressions itself; PermitAll is the
// default. The parameter exists as a seam so an extended-state
// evaluator can be injected later without touching the transition
// function.
type GuardEvaluator func(guard string) bool

// PermitAll treats every guard as satisfied.
func PermitAll(string) bool { return true }

// StepResult is the outcome of the pure transition function: either a
// successful move (OK with NextStateID and Actions) or a failure
// carrying its Reason.
type StepResult struct {
	OK          bool
	NextStateID string
	Actions     []string
	Reason      FailureReason
}

// ComputeTransition is the pure, side-effect-free transition function
// (graph, current, event) -> StepResult. It never mutates anything.
func ComputeTransition(g *domain.MachineGraph, current, event string, guards GuardEvaluator) StepResult {
	node, ok := g.Node(current)
	if !ok {
		return StepResult{Reason: ReasonNoTransition}
	}

	t, ok := node.TransitionFor(event)
	if !ok {
		return StepResult{Reason: ReasonInvalidEvent}
	}

	// Guards are recognized but not evaluated by the core; with the
	// default evaluator this branch never rejects.
	if guards != nil && t.Guard != "" && !guards(t.Guard) {
		return StepResult{Reason: ReasonInvalidEvent}
	}

	return StepResult{OK: true, NextStateID: t.To, Actions: t.Actions}
}
