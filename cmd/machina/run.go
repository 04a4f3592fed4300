package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/machina-fsm/machina"
	"github.com/machina-fsm/machina/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <machine-file> [event...]",
	Short: "Simulate a machine with a sequence of events",
	Long:  `Loads the definition, sends each event in order and prints the resulting history and log. Unrecognized events are recorded in the log, never fatal.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation(cmd, args[0], args[1:])
	},
}

func init() {
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.AddCommand(runCmd)
}

func runSimulation(cmd *cobra.Command, path string, events []string) error {
	raw, err := loadDefinition(path)
	if err != nil {
		return err
	}

	wb := machina.New(machina.WithLogger(newLogger(cmd)))
	if err := wb.LoadMachine(raw); err != nil {
		return fmt.Errorf("failed to load machine: %w", err)
	}

	if noBanner, _ := cmd.Flags().GetBool("no-banner"); !noBanner {
		tui.PrintBanner()
	}

	for _, event := range events {
		if _, err := wb.Step(event); err != nil {
			return err
		}
	}

	snapshot, _ := wb.SimulationState()
	fmt.Printf("Active state: %s (step %d)\n", snapshot.ActiveStateID, snapshot.Steps)
	fmt.Printf("History: %s\n", strings.Join(snapshot.History, " -> "))
	fmt.Println("Log:")
	for _, line := range snapshot.Log {
		fmt.Printf("  %s\n", line)
	}
	if available := wb.AvailableEvents(); len(available) > 0 {
		fmt.Printf("Available events: %s\n", strings.Join(available, ", "))
	} else {
		fmt.Println("Available events: none (terminal state)")
	}
	return nil
}
