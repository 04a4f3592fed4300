// Package machina is a finite-state-machine workbench: it compiles
// declarative, JSON-shaped machine definitions into validated graphs,
// analyzes them (reachability, dead ends, cycles), simulates them
// deterministically with full history and time travel, and
// round-trips graph plus simulation state through portable session
// documents.
//
// The Workbench type is the single entry point; the packages under
// pkg/ and internal/ hold the individual stages for callers that need
// finer control.
//
//	wb := machina.New()
//	err := wb.LoadMachine(map[string]any{
//	    "initial": "idle",
//	    "states": map[string]any{
//	        "idle":    map[string]any{"on": map[string]any{"START": "running"}},
//	        "running": map[string]any{"type": "final"},
//	    },
//	})
//	if err != nil {
//	    // the same failure is also queryable via wb.GetDiagnostics()
//	}
//	snapshot, _ := wb.Step("START")
package machina
