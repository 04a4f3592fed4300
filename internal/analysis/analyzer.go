// Package analysis performs static graph analysis over a compiled
// machine graph: reachability, dead-end detection and simple-cycle
// enumeration.
package analysis

import (
	"sort"

	"github.com/machina-fsm/machina/pkg/domain"
)

// Result is a freshly constructed analysis value; it is never aliased
// across calls.
type Result struct {
	// Reachable holds every state id reachable from the initial state.
	Reachable map[string]bool
	// Orphans is the sorted complement of Reachable over all state ids.
	Orphans []string
	// DeadEnds lists reachable, non-final states with no outgoing
	// transitions, sorted. Unreachable states are never classified as
	// dead ends; they surface only as orphans.
	DeadEnds []string
	// Cycles lists every simple cycle found by depth-first traversal
	// from the initial state. Each entry is the cycle's member set in
	// lexicographic order. Cycles confined to orphan subgraphs are
	// not reported; see Analyzer.findCycles.
	Cycles [][]string
	// Nondeterminism maps state ids to conflicting event names. A
	// node cannot hold two transitions for the same event, so this is
	// always empty today; the field is reserved for a future
	// relaxation of that invariant.
	Nondeterminism map[string][]string
}

// Analyzer runs static analysis passes over machine graphs.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs every pass and returns a fresh Result.
func (a *Analyzer) Analyze(g *domain.MachineGraph) *Result {
	reachable := a.reachableFrom(g, g.Initial)

	var orphans []string
	for _, id := range g.StateIDs() {
		if !reachable[id] {
			orphans = append(orphans, id)
		}
	}

	var deadEnds []string
	for _, id := range g.StateIDs() {
		if !reachable[id] {
			continue
		}
		node, _ := g.Node(id)
		if node.Kind != domain.KindFinal && node.Degree() == 0 {
			deadEnds = append(deadEnds, id)
		}
	}

	return &Result{
		Reachable:      reachable,
		Orphans:        orphans,
		DeadEnds:       deadEnds,
		Cycles:         a.findCycles(g),
		Nondeterminism: a.detectNondeterminism(g),
	}
}

// reachableFrom walks the graph breadth-first over outgoing
// transitions. O(states + transitions).
func (a *Analyzer) reachableFrom(g *domain.MachineGraph, start string) map[string]bool {
	visited := make(map[string]bool)
	if _, ok := g.Node(start); !ok {
		return visited
	}

	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node, _ := g.Node(current)
		for _, t := range node.Outgoing() {
			if !visited[t.To] {
				visited[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return visited
}

// findCycles runs a depth-first traversal from the initial state with
// an explicit recursion stack. An edge into a node currently on the
// stack records one cycle: the stack slice from that node's position
// to the current frame, collapsed into a sorted member set.
//
// The traversal starts only from the initial state, so cycles living
// entirely inside orphan subgraphs are never reported. That is an
// intentional, documented incompleteness: orphans are already flagged
// by reachability, and cycle reports are meant to describe what a
// running machine can actually loop through. Multiple back-edges into
// the same ancestor yield multiple records with overlapping
// membership; no deduplication is performed.
func (a *Analyzer) findCycles(g *domain.MachineGraph) [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]int) // id -> position in stack
	var stack []string

	var dfs func(id string)
	dfs = func(id string) {
		visited[id] = true
		onStack[id] = len(stack)
		stack = append(stack, id)

		node, _ := g.Node(id)
		for _, t := range node.Outgoing() {
			if pos, ok := onStack[t.To]; ok {
				members := append([]string(nil), stack[pos:]...)
				sort.Strings(members)
				cycles = append(cycles, members)
				continue
			}
			if !visited[t.To] {
				dfs(t.To)
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, id)
	}

	if _, ok := g.Node(g.Initial); ok {
		dfs(g.Initial)
	}
	return cycles
}

// detectNondeterminism is a structural no-op: a node's transition
// table holds at most one entry per event, so no state can offer two
// transitions for the same event. It exists to be extended if that
// invariant is ever relaxed.
func (a *Analyzer) detectNondeterminism(g *domain.MachineGraph) map[string][]string {
	return make(map[string][]string)
}
