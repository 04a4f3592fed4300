package domain

// Transition is a directed, event-labeled edge between two states.
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Event string `json:"event"`

	// Guard is an opaque condition identifier. It is recognized and
	// carried through serialization, but never evaluated by the core;
	// the simulator treats every guard as satisfied.
	Guard string `json:"guard,omitempty"`

	// Actions is the ordered list of action identifiers attached to
	// this edge. Actions are surfaced to the caller, never executed.
	Actions []string `json:"actions,omitempty"`
}

// Clone returns a deep copy of the transition.
func (t Transition) Clone() Transition {
	cp := t
	if t.Actions != nil {
		cp.Actions = append([]string(nil), t.Actions...)
	}
	return cp
}
