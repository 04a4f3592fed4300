package machina_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	machina "github.com/machina-fsm/machina"
	"github.com/machina-fsm/machina/internal/diagnostics"
	"github.com/machina-fsm/machina/pkg/domain"
)

func trafficLightDef() map[string]any {
	return map[string]any{
		"id":      "traffic-light",
		"initial": "red",
		"states": map[string]any{
			"red":    map[string]any{"on": map[string]any{"TIMER": "green"}},
			"green":  map[string]any{"on": map[string]any{"TIMER": "yellow"}},
			"yellow": map[string]any{"on": map[string]any{"TIMER": "red"}},
		},
	}
}

func TestWorkbench_NoMachineLoaded(t *testing.T) {
	w := machina.New()

	_, err := w.Step("TIMER")
	assert.True(t, errors.Is(err, domain.ErrNoMachine))
	_, err = w.Reset()
	assert.True(t, errors.Is(err, domain.ErrNoMachine))
	_, err = w.TimeTravel(0)
	assert.True(t, errors.Is(err, domain.ErrNoMachine))
	_, err = w.AnalyzeMachine()
	assert.True(t, errors.Is(err, domain.ErrNoMachine))
	_, err = w.ExportSession()
	assert.True(t, errors.Is(err, domain.ErrNoMachine))

	assert.Nil(t, w.Graph())
	assert.Nil(t, w.AvailableEvents())
	_, ok := w.SimulationState()
	assert.False(t, ok)

	report := w.GetDiagnostics()
	assert.Equal(t, diagnostics.StatusError, report.Status)
}

func TestWorkbench_LoadAndStep(t *testing.T) {
	w := machina.New()
	require.NoError(t, w.LoadMachine(trafficLightDef()))

	state, ok := w.SimulationState()
	require.True(t, ok)
	assert.Equal(t, "red", state.ActiveStateID)

	state, err := w.Step("TIMER")
	require.NoError(t, err)
	assert.Equal(t, "green", state.ActiveStateID)
	assert.Equal(t, 1, state.Steps)

	state, err = w.Step("HONK")
	require.NoError(t, err, "rejected events are not usage errors")
	assert.Equal(t, "green", state.ActiveStateID)
	assert.Contains(t, state.Log[len(state.Log)-1], "Failed")

	assert.Equal(t, []string{"TIMER"}, w.AvailableEvents())
}

func TestWorkbench_ResetAndTimeTravel(t *testing.T) {
	w := machina.New()
	require.NoError(t, w.LoadMachine(trafficLightDef()))

	_, err := w.Step("TIMER")
	require.NoError(t, err)
	_, err = w.Step("TIMER")
	require.NoError(t, err)

	state, err := w.TimeTravel(1)
	require.NoError(t, err)
	assert.Equal(t, "green", state.ActiveStateID)
	assert.Equal(t, []string{"red", "green"}, state.History)

	state, err = w.Reset()
	require.NoError(t, err)
	assert.Equal(t, "red", state.ActiveStateID)
	assert.Equal(t, []string{"red"}, state.History)
}

func TestWorkbench_FailedLoadClearsMachine(t *testing.T) {
	w := machina.New()
	require.NoError(t, w.LoadMachine(trafficLightDef()))
	require.NotNil(t, w.Graph())

	err := w.LoadMachine(map[string]any{
		"initial": "ghost",
		"states":  map[string]any{"a": map[string]any{}},
	})
	require.Error(t, err)

	// The previous machine is gone, not retained.
	assert.Nil(t, w.Graph())
	_, stepErr := w.Step("TIMER")
	assert.True(t, errors.Is(stepErr, domain.ErrNoMachine))

	// Diagnostics surface the captured load error.
	report := w.GetDiagnostics()
	assert.Equal(t, diagnostics.StatusError, report.Status)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "INVALID_REFERENCE", report.Issues[0].Code)
	assert.Equal(t, "initial", report.Issues[0].Path)
}

func TestWorkbench_LoadRecoversAfterFailure(t *testing.T) {
	w := machina.New()
	require.Error(t, w.LoadMachine("not a machine"))
	require.NoError(t, w.LoadMachine(trafficLightDef()))

	report := w.GetDiagnostics()
	assert.Equal(t, diagnostics.StatusValid, report.Status)
	assert.Equal(t, 3, report.Metrics.StateCount)
}

func TestWorkbench_GuardEvaluator(t *testing.T) {
	w := machina.New(machina.WithGuardEvaluator(func(string) bool { return false }))
	require.NoError(t, w.LoadMachine(map[string]any{
		"initial": "a",
		"states": map[string]any{
			"a": map[string]any{"on": map[string]any{
				"GO": map[string]any{"target": "b", "cond": "never"},
			}},
			"b": map[string]any{"type": "final"},
		},
	}))

	state, err := w.Step("GO")
	require.NoError(t, err)
	assert.Equal(t, "a", state.ActiveStateID)
	assert.Contains(t, state.Log[len(state.Log)-1], "Failed")
}

func TestWorkbench_ExportSession(t *testing.T) {
	w := machina.New()
	require.NoError(t, w.LoadMachine(trafficLightDef()))
	_, err := w.Step("TIMER")
	require.NoError(t, err)

	doc, err := w.ExportSession()
	require.NoError(t, err)
	require.NotNil(t, doc.Machine)
	assert.Equal(t, "traffic-light", doc.Machine.ID)
	require.NotNil(t, doc.Simulation)
	assert.Equal(t, []string{"red", "green"}, doc.Simulation.History)
	assert.Equal(t, 1, doc.Simulation.CurrentStep)
}
