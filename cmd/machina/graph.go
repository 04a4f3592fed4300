package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/machina-fsm/machina"
	"github.com/machina-fsm/machina/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph <machine-file> [event...]",
	Short: "Export a machine as a Mermaid flowchart",
	Long:  `Compiles the definition and prints Mermaid flowchart syntax. If events are given, they are simulated first and the visited/current states are highlighted.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := loadDefinition(args[0])
		if err != nil {
			return err
		}

		wb := machina.New(machina.WithLogger(newLogger(cmd)))
		if err := wb.LoadMachine(raw); err != nil {
			return fmt.Errorf("failed to load machine: %w", err)
		}

		var overlay *graph.Overlay
		if events := args[1:]; len(events) > 0 {
			for _, event := range events {
				if _, err := wb.Step(event); err != nil {
					return err
				}
			}
			snapshot, _ := wb.SimulationState()
			overlay = &graph.Overlay{
				VisitedStates: snapshot.History,
				CurrentState:  snapshot.ActiveStateID,
			}
		}

		fmt.Print(graph.GenerateMermaid(wb.Graph(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
