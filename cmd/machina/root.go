package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/machina-fsm/machina/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "machina",
	Short: "machina is a finite-state-machine workbench",
	Long:  `machina compiles declarative machine definitions, analyzes their graphs, runs deterministic simulations and round-trips sessions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger from the --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
