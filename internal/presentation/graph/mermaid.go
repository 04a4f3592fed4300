// Package graph renders machine graphs as Mermaid flowchart text for
// external display collaborators.
package graph

import (
	"fmt"
	"strings"

	"github.com/machina-fsm/machina/pkg/domain"
)

// Overlay contains dynamic simulation data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart from a machine graph.
// It applies semantic styling:
//   - initial state: ((Circle))
//   - final state: [[Subroutine]]
//   - default: [Rectangle]
//
// Edges carry their event name; guarded edges show the guard in
// brackets. Overlay styles (visited/current) are appended if provided.
func GenerateMermaid(g *domain.MachineGraph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, id := range g.StateIDs() {
		node, _ := g.Node(id)
		safeID := sanitizeMermaidID(id)

		opener, closer := "[", "]"
		switch node.Kind {
		case domain.KindInitial:
			opener, closer = "((", "))"
		case domain.KindFinal:
			opener, closer = "[[", "]]"
		}
		if id == g.Initial {
			opener, closer = "((", "))"
		}

		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, id, closer)

		for _, t := range node.Outgoing() {
			label := t.Event
			if t.Guard != "" {
				label = fmt.Sprintf("%s [%s]", t.Event, strings.ReplaceAll(t.Guard, "\"", "'"))
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(t.To))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !visitedSet[safeID] {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return replacer.Replace(id)
}
