package machina

import (
	"log/slog"

	"github.com/machina-fsm/machina/internal/analysis"
	"github.com/machina-fsm/machina/internal/compiler"
	"github.com/machina-fsm/machina/internal/diagnostics"
	"github.com/machina-fsm/machina/internal/logging"
	"github.com/machina-fsm/machina/internal/simulation"
	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/session"
)

// Workbench is the high-level entry point of the library. It owns the
// currently loaded machine: the compiled graph, its simulator and the
// latest analysis, held as one composite value that is swapped
// atomically on every load. A failed load clears all three together
// and captures the error for later diagnostics retrieval, so failures
// are both loud (returned) and queryable.
//
// A Workbench serves one logical caller; it is fully synchronous and
// performs no locking.
type Workbench struct {
	parser   *compiler.Parser
	analyzer *analysis.Analyzer
	reporter *diagnostics.Reporter
	guards   simulation.GuardEvaluator
	logger   *slog.Logger

	loaded  *loadedMachine
	loadErr error
}

// loadedMachine is the composite session value. Keeping the graph,
// simulator and analysis in one struct means a load failure can never
// leave a partially cleared trio behind.
type loadedMachine struct {
	graph    *domain.MachineGraph
	sim      *simulation.Simulator
	analysis *analysis.Result
}

// Option configures a Workbench.
type Option func(*Workbench)

// WithLogger sets a structured logger. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbench) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithGuardEvaluator injects a guard evaluator used by simulations.
// The default treats every guard as satisfied.
func WithGuardEvaluator(eval simulation.GuardEvaluator) Option {
	return func(w *Workbench) {
		if eval != nil {
			w.guards = eval
		}
	}
}

// New creates a Workbench with no machine loaded.
func New(opts ...Option) *Workbench {
	w := &Workbench{
		parser:   compiler.NewParser(),
		analyzer: analysis.NewAnalyzer(),
		reporter: diagnostics.NewReporter(),
		guards:   simulation.PermitAll,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoadMachine compiles the definition, builds a fresh simulator and
// runs analysis as one unit. On failure the previous machine (if any)
// is discarded, the error is captured for GetDiagnostics, and the
// error is returned.
func (w *Workbench) LoadMachine(definition any) error {
	graph, err := w.parser.Compile(definition)
	if err != nil {
		w.loaded = nil
		w.loadErr = err
		w.logger.Warn("machine load failed", "error", err)
		return err
	}

	sim := simulation.NewSimulator(graph,
		simulation.WithGuardEvaluator(w.guards),
		simulation.WithLogger(w.logger),
	)
	w.loaded = &loadedMachine{
		graph:    graph,
		sim:      sim,
		analysis: w.analyzer.Analyze(graph),
	}
	w.loadErr = nil
	w.logger.Info("machine loaded", "machine", graph.ID, "states", graph.StateCount(), "transitions", graph.TransitionCount())
	return nil
}

// AnalyzeMachine re-runs static analysis and returns a fresh result.
func (w *Workbench) AnalyzeMachine() (*analysis.Result, error) {
	if w.loaded == nil {
		return nil, domain.ErrNoMachine
	}
	result := w.analyzer.Analyze(w.loaded.graph)
	w.loaded.analysis = result
	return result, nil
}

// Step sends an event to the simulator and returns the new snapshot.
// Calling Step before a successful load is a usage error, distinct
// from simulation failures (which never error; see the snapshot log).
func (w *Workbench) Step(event string) (domain.SimulationState, error) {
	if w.loaded == nil {
		return domain.SimulationState{}, domain.ErrNoMachine
	}
	return w.loaded.sim.Send(event), nil
}

// Reset restores the simulation to its construction-time snapshot.
func (w *Workbench) Reset() (domain.SimulationState, error) {
	if w.loaded == nil {
		return domain.SimulationState{}, domain.ErrNoMachine
	}
	return w.loaded.sim.Reset(), nil
}

// TimeTravel rewinds the simulation to a previous step. Out-of-range
// indexes are silently ignored by the simulator.
func (w *Workbench) TimeTravel(index int) (domain.SimulationState, error) {
	if w.loaded == nil {
		return domain.SimulationState{}, domain.ErrNoMachine
	}
	return w.loaded.sim.TimeTravel(index), nil
}

// GetDiagnostics returns the current diagnostic report. A captured
// parser-stage error takes precedence over a graph-based report.
func (w *Workbench) GetDiagnostics() *diagnostics.Report {
	if w.loadErr != nil {
		return w.reporter.ReportError(w.loadErr)
	}
	if w.loaded != nil {
		return w.reporter.Report(w.loaded.graph, w.loaded.analysis)
	}
	return w.reporter.ReportError(domain.ErrNoMachine)
}

// Graph returns the currently loaded graph, or nil when absent.
func (w *Workbench) Graph() *domain.MachineGraph {
	if w.loaded == nil {
		return nil
	}
	return w.loaded.graph
}

// SimulationState returns a snapshot of the current simulation, and
// false when no machine is loaded.
func (w *Workbench) SimulationState() (domain.SimulationState, bool) {
	if w.loaded == nil {
		return domain.SimulationState{}, false
	}
	return w.loaded.sim.State(), true
}

// AvailableEvents returns the events the active state handles, in
// edge order. Nil when no machine is loaded.
func (w *Workbench) AvailableEvents() []string {
	if w.loaded == nil {
		return nil
	}
	return w.loaded.sim.AvailableEvents()
}

// ExportSession bundles the loaded machine and current simulation
// snapshot into a portable session document.
func (w *Workbench) ExportSession() (*session.Document, error) {
	if w.loaded == nil {
		return nil, domain.ErrNoMachine
	}
	return session.Export(w.loaded.graph, w.loaded.sim.State()), nil
}
