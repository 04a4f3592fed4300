package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machina-fsm/machina/internal/analysis"
	"github.com/machina-fsm/machina/internal/compiler"
	"github.com/machina-fsm/machina/pkg/domain"
)

func compile(t *testing.T, def map[string]any) *domain.MachineGraph {
	t.Helper()
	graph, err := compiler.NewParser().Compile(def)
	require.NoError(t, err)
	return graph
}

func TestAnalyze_ReachabilityAndOrphans(t *testing.T) {
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"NEXT": "B"}},
			"B": map[string]any{},
			"C": map[string]any{},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)

	assert.True(t, res.Reachable["A"])
	assert.True(t, res.Reachable["B"])
	assert.False(t, res.Reachable["C"])
	assert.Equal(t, []string{"C"}, res.Orphans)

	// C is an orphan but not a dead end: dead-end classification only
	// applies to reachable states, so the two sets are disjoint here.
	assert.Equal(t, []string{"B"}, res.DeadEnds)
}

func TestAnalyze_FinalStateIsNotDeadEnd(t *testing.T) {
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"NEXT": "B"}},
			"B": map[string]any{"type": "final"},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	assert.Empty(t, res.DeadEnds)
	assert.Empty(t, res.Orphans)
}

func TestAnalyze_SimpleCycle(t *testing.T) {
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"NEXT": "B"}},
			"B": map[string]any{"on": map[string]any{"BACK": "A"}},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	require.Len(t, res.Cycles, 1)
	assert.Equal(t, []string{"A", "B"}, res.Cycles[0])
}

func TestAnalyze_SelfLoop(t *testing.T) {
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"AGAIN": "A"}},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	require.Len(t, res.Cycles, 1)
	assert.Equal(t, []string{"A"}, res.Cycles[0])
}

func TestAnalyze_OrphanCycleNotReported(t *testing.T) {
	// X and Y loop among themselves but are unreachable from A. The
	// traversal starts only from the initial state, so this cycle is
	// intentionally not reported; X and Y surface as orphans instead.
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"type": "final"},
			"X": map[string]any{"on": map[string]any{"HOP": "Y"}},
			"Y": map[string]any{"on": map[string]any{"HOP": "X"}},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	assert.Empty(t, res.Cycles)
	assert.Equal(t, []string{"X", "Y"}, res.Orphans)
}

func TestAnalyze_MultipleBackEdges(t *testing.T) {
	// Two distinct back-edges into A produce two cycle records with
	// overlapping membership; no deduplication is performed.
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"NEXT": "B"}},
			"B": map[string]any{"on": map[string]any{
				"BACK": "A",
				"DOWN": "C",
			}},
			"C": map[string]any{"on": map[string]any{"BACK": "A"}},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	require.Len(t, res.Cycles, 2)
	for _, cycle := range res.Cycles {
		assert.Contains(t, cycle, "A")
		assert.Contains(t, cycle, "B")
	}
}

func TestAnalyze_NondeterminismAlwaysEmpty(t *testing.T) {
	graph := compile(t, map[string]any{
		"initial": "A",
		"states": map[string]any{
			"A": map[string]any{"on": map[string]any{"NEXT": "A"}},
		},
	})

	res := analysis.NewAnalyzer().Analyze(graph)
	assert.NotNil(t, res.Nondeterminism)
	assert.Empty(t, res.Nondeterminism)
}
