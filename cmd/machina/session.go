package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/machina-fsm/machina"
	"github.com/machina-fsm/machina/pkg/adapters/file"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Export and import simulation sessions",
}

var sessionExportCmd = &cobra.Command{
	Use:   "export <machine-file> [event...]",
	Short: "Run a simulation and persist it as a session document",
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
		for _, event := range args[1:] {
			if _, err := wb.Step(event); err != nil {
				return err
			}
		}

		doc, err := wb.ExportSession()
		if err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = doc.Meta.ID
		}

		store := file.NewStore(sessionDir(cmd))
		if err := store.Save(cmd.Context(), id, doc); err != nil {
			return err
		}
		fmt.Printf("Session saved: %s\n", id)
		return nil
	},
}

var sessionImportCmd = &cobra.Command{
	Use:   "import <session-id>",
	Short: "Load a session document and re-validate its machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := file.NewStore(sessionDir(cmd))
		doc, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Imported definitions are untrusted until re-compiled.
		wb := machina.New(machina.WithLogger(newLogger(cmd)))
		if err := wb.LoadMachine(doc.Machine); err != nil {
			return fmt.Errorf("session machine failed validation: %w", err)
		}

		graph := wb.Graph()
		fmt.Printf("Machine '%s': %d states, %d transitions\n", graph.ID, graph.StateCount(), graph.TransitionCount())
		fmt.Printf("Recorded steps: %d\n", doc.Simulation.CurrentStep)
		if len(doc.Simulation.History) > 0 {
			fmt.Printf("History: %s\n", strings.Join(doc.Simulation.History, " -> "))
		}
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := file.NewStore(sessionDir(cmd))
		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No sessions stored.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	sessionCmd.PersistentFlags().String("dir", "", "Session directory (default .machina/sessions)")
	sessionExportCmd.Flags().String("id", "", "Session id (default: generated)")
	sessionCmd.AddCommand(sessionExportCmd, sessionImportCmd, sessionListCmd)
	rootCmd.AddCommand(sessionCmd)
}

func sessionDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	return dir
}
