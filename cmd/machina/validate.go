package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/machina-fsm/machina"
	"github.com/machina-fsm/machina/internal/diagnostics"
	"github.com/machina-fsm/machina/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine-file>",
	Short: "Compile and analyze a machine definition",
	Long:  `Compiles the definition, runs reachability/dead-end/cycle analysis and prints the diagnostic report. Exits non-zero when the definition fails to parse.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report, err := runValidate(cmd, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		fmt.Print(render(report.Markdown()))

		if report.Status == diagnostics.StatusError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) (*diagnostics.Report, error) {
	raw, err := loadDefinition(path)
	if err != nil {
		return nil, err
	}

	wb := machina.New(machina.WithLogger(newLogger(cmd)))
	// A load failure is still reportable: the workbench captures the
	// parse error and GetDiagnostics converts it to an error report.
	_ = wb.LoadMachine(raw)
	return wb.GetDiagnostics(), nil
}
