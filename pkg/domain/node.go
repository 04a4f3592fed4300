package domain

// StateNode is a vertex of the machine graph: an identity, a kind,
// its outgoing transitions and an open metadata mapping.
//
// A node holds at most one transition per event. SetTransition
// implements the insertion policy explicitly: inserting a second
// transition for an event the node already handles overwrites the
// earlier one (last write wins). This is a deliberate, documented
// choice rather than an incidental container property.
type StateNode struct {
	ID   string         `json:"id"`
	Kind StateKind      `json:"kind"`
	Meta map[string]any `json:"meta,omitempty"`

	// on indexes transitions by event name for O(1) dispatch.
	on map[string]*Transition
	// outgoing preserves edge order; it is the source of truth for
	// event iteration order (Go maps are unordered).
	outgoing []*Transition
}

// NewStateNode creates an empty node of the given kind.
func NewStateNode(id string, kind StateKind, meta map[string]any) *StateNode {
	return &StateNode{
		ID:   id,
		Kind: kind,
		Meta: meta,
		on:   make(map[string]*Transition),
	}
}

// SetTransition registers an outgoing edge under its event name.
// If the event is already handled, the previous transition is
// replaced in place, keeping its position in the outgoing order.
func (n *StateNode) SetTransition(t Transition) {
	if existing, ok := n.on[t.Event]; ok {
		*existing = t
		return
	}
	stored := t
	n.on[t.Event] = &stored
	n.outgoing = append(n.outgoing, &stored)
}

// TransitionFor returns the transition registered for the event.
func (n *StateNode) TransitionFor(event string) (Transition, bool) {
	t, ok := n.on[event]
	if !ok {
		return Transition{}, false
	}
	return t.Clone(), true
}

// Outgoing returns copies of the node's transitions in edge order.
func (n *StateNode) Outgoing() []Transition {
	out := make([]Transition, 0, len(n.outgoing))
	for _, t := range n.outgoing {
		out = append(out, t.Clone())
	}
	return out
}

// Events returns the event names the node handles, in edge order.
// Empty for final or otherwise exit-less states.
func (n *StateNode) Events() []string {
	events := make([]string, 0, len(n.outgoing))
	for _, t := range n.outgoing {
		events = append(events, t.Event)
	}
	return events
}

// Degree returns the number of outgoing transitions.
func (n *StateNode) Degree() int {
	return len(n.outgoing)
}
