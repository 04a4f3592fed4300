package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/schema"
)

// GraphToDef converts a compiled graph back into its canonical
// definition value. This is a normalization, not a byte-faithful
// echo: state ids and events are emitted in the graph's canonical
// order, the bare-string transition shorthand is used whenever an
// edge carries no guard and no actions, and every node's kind is
// spelled out.
func GraphToDef(g *domain.MachineGraph) *schema.MachineDef {
	states := make(map[string]schema.StateDef, g.StateCount())
	for _, id := range g.StateIDs() {
		node, _ := g.Node(id)

		sd := schema.StateDef{
			Type: string(node.Kind),
			Meta: node.Meta,
		}
		if node.Degree() > 0 {
			sd.On = make(map[string]schema.TransitionDef, node.Degree())
			for _, t := range node.Outgoing() {
				sd.On[t.Event] = schema.TransitionDef{
					Target:  t.To,
					Cond:    t.Guard,
					Actions: t.Actions,
				}
			}
		}
		states[id] = sd
	}

	return &schema.MachineDef{ID: g.ID, Initial: g.Initial, States: states}
}

// Export bundles the canonical definition with the simulation's
// history, log and step count, a creation timestamp and the fixed
// format version.
func Export(g *domain.MachineGraph, state domain.SimulationState) *Document {
	snapshot := state.Clone()
	return &Document{
		Machine: GraphToDef(g),
		Simulation: &SimulationRecord{
			History:     snapshot.History,
			Log:         snapshot.Log,
			CurrentStep: snapshot.Steps,
		},
		Meta: &Meta{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Version:   Version,
		},
	}
}

// EncodeJSON renders the document as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Import parses a session document. It requires a present
// machine.states mapping; the simulation block is optional and
// defaults to an empty record. Any failure is reported as one error
// wrapping domain.ErrInvalidSession and no partial document is
// returned.
//
// Import does not re-validate the embedded definition; re-run the
// compiler before trusting it.
func Import(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}
	if doc.Machine == nil || doc.Machine.States == nil {
		return nil, fmt.Errorf("%w: missing machine.states", domain.ErrInvalidSession)
	}
	if doc.Simulation == nil {
		doc.Simulation = &SimulationRecord{History: []string{}, Log: []string{}}
	}
	return &doc, nil
}
