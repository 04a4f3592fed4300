// Package compiler turns a declarative machine definition into a
// validated domain.MachineGraph.
package compiler

import (
	"fmt"
	"sort"

	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/schema"
)

// DefaultMachineID is used when a definition carries no id.
const DefaultMachineID = "machine"

// Parser converts untyped definition values into machine graphs.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Compile builds a validated graph from a raw definition value.
//
// Construction is two-pass: pass 1 creates every node, so forward
// references resolve regardless of declaration order; pass 2 links
// each transition and validates that its target exists. Compilation
// fails fast on the first problem and never returns a partial graph.
// Go maps carry no declaration order, so states and events are
// processed lexicographically; this makes compilation, edge order and
// error selection deterministic.
func (p *Parser) Compile(raw any) (*domain.MachineGraph, error) {
	def, err := schema.Decode(raw)
	if err != nil {
		return nil, err
	}

	// Pass 1: materialize every node.
	states := make(map[string]*domain.StateNode, len(def.States))
	for id, sd := range def.States {
		states[id] = domain.NewStateNode(id, domain.NormalizeKind(sd.Type), cloneMeta(sd.Meta))
	}

	if _, ok := states[def.Initial]; !ok {
		return nil, schema.NewParseError(schema.CodeInvalidReference, "initial",
			"initial state %q is not declared in states", def.Initial)
	}

	// Pass 2: link and validate edges.
	for _, id := range sortedKeys(def.States) {
		sd := def.States[id]
		for _, event := range sortedKeys(sd.On) {
			td := sd.On[event]
			if _, ok := states[td.Target]; !ok {
				return nil, schema.NewParseError(schema.CodeInvalidReference,
					fmt.Sprintf("states.%s.on.%s", id, event),
					"state %q transitions on %q to undeclared state %q", id, event, td.Target)
			}
			states[id].SetTransition(domain.Transition{
				From:    id,
				To:      td.Target,
				Event:   event,
				Guard:   td.Cond,
				Actions: append([]string(nil), td.Actions...),
			})
		}
	}

	machineID := def.ID
	if machineID == "" {
		machineID = DefaultMachineID
	}
	return domain.NewMachineGraph(machineID, def.Initial, states), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	cp := make(map[string]any, len(meta))
	for k, v := range meta {
		cp[k] = v
	}
	return cp
}
