package domain

import "sort"

// MachineGraph is the validated, directed graph of a machine
// definition. It is created once per successful load and replaced
// wholesale on the next load; nothing mutates it after construction.
type MachineGraph struct {
	ID      string
	Initial string

	states map[string]*StateNode
}

// NewMachineGraph creates a graph over the given node set. The
// compiler is responsible for having validated the initial id and
// every transition target before calling this.
func NewMachineGraph(id, initial string, states map[string]*StateNode) *MachineGraph {
	return &MachineGraph{ID: id, Initial: initial, states: states}
}

// Node returns the state node for the given id.
func (g *MachineGraph) Node(id string) (*StateNode, bool) {
	n, ok := g.states[id]
	return n, ok
}

// StateIDs returns every state id in lexicographic order.
func (g *MachineGraph) StateIDs() []string {
	ids := make([]string, 0, len(g.states))
	for id := range g.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StateCount returns the number of states in the graph.
func (g *MachineGraph) StateCount() int {
	return len(g.states)
}

// TransitionCount returns the sum of outgoing-edge counts.
func (g *MachineGraph) TransitionCount() int {
	total := 0
	for _, n := range g.states {
		total += n.Degree()
	}
	return total
}
