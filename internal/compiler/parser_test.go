package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machina-fsm/machina/internal/compiler"
	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/schema"
)

func trafficLightDef() map[string]any {
	return map[string]any{
		"id":      "traffic-light",
		"initial": "red",
		"states": map[string]any{
			"red":    map[string]any{"type": "initial", "on": map[string]any{"TIMER": "green"}},
			"green":  map[string]any{"on": map[string]any{"TIMER": "yellow"}},
			"yellow": map[string]any{"on": map[string]any{"TIMER": "red"}},
		},
	}
}

func TestCompile_BuildsGraph(t *testing.T) {
	graph, err := compiler.NewParser().Compile(trafficLightDef())
	require.NoError(t, err)

	// Node count equals the key count of the states mapping.
	assert.Equal(t, 3, graph.StateCount())
	assert.Equal(t, "red", graph.Initial)
	assert.Equal(t, "traffic-light", graph.ID)
	assert.Equal(t, 3, graph.TransitionCount())

	red, ok := graph.Node("red")
	require.True(t, ok)
	assert.Equal(t, domain.KindInitial, red.Kind)

	tr, ok := red.TransitionFor("TIMER")
	require.True(t, ok)
	assert.Equal(t, "green", tr.To)
	assert.Equal(t, "red", tr.From)
	assert.Equal(t, "TIMER", tr.Event)
}

func TestCompile_ForwardReferences(t *testing.T) {
	// "a" transitions to "z" which is declared later; pass 1 creates
	// every node before pass 2 links edges, so declaration order
	// never matters.
	def := map[string]any{
		"initial": "a",
		"states": map[string]any{
			"a": map[string]any{"on": map[string]any{"JUMP": "z"}},
			"z": map[string]any{"type": "final"},
		},
	}

	graph, err := compiler.NewParser().Compile(def)
	require.NoError(t, err)

	tr, ok := mustNode(t, graph, "a").TransitionFor("JUMP")
	require.True(t, ok)
	assert.Equal(t, "z", tr.To)
}

func TestCompile_InvalidReference_Target(t *testing.T) {
	def := map[string]any{
		"initial": "a",
		"states": map[string]any{
			"a": map[string]any{"on": map[string]any{"NEXT": "ghost"}},
		},
	}

	graph, err := compiler.NewParser().Compile(def)
	assert.Nil(t, graph, "no partial graph on failure")

	pe, ok := schema.AsParseError(err)
	require.True(t, ok, "error should be a ParseError, got %v", err)
	assert.Equal(t, schema.CodeInvalidReference, pe.Code)
	assert.Equal(t, "states.a.on.NEXT", pe.Path)
	assert.Contains(t, pe.Message, "ghost")
	assert.Contains(t, pe.Message, "NEXT")
}

func TestCompile_InvalidReference_Initial(t *testing.T) {
	def := map[string]any{
		"initial": "nowhere",
		"states":  map[string]any{"a": map[string]any{}},
	}

	_, err := compiler.NewParser().Compile(def)
	pe, ok := schema.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, schema.CodeInvalidReference, pe.Code)
	assert.Equal(t, "initial", pe.Path)
}

func TestCompile_GuardAndActionsCarried(t *testing.T) {
	def := map[string]any{
		"initial": "a",
		"states": map[string]any{
			"a": map[string]any{"on": map[string]any{
				"GO": map[string]any{"target": "b", "cond": "isReady", "actions": []any{"x", "y"}},
			}},
			"b": map[string]any{},
		},
	}

	graph, err := compiler.NewParser().Compile(def)
	require.NoError(t, err)

	tr, _ := mustNode(t, graph, "a").TransitionFor("GO")
	assert.Equal(t, "isReady", tr.Guard)
	assert.Equal(t, []string{"x", "y"}, tr.Actions)
}

func TestCompile_DefaultMachineID(t *testing.T) {
	def := map[string]any{
		"initial": "a",
		"states":  map[string]any{"a": map[string]any{}},
	}

	graph, err := compiler.NewParser().Compile(def)
	require.NoError(t, err)
	assert.Equal(t, compiler.DefaultMachineID, graph.ID)
}

func TestCompile_UnknownKindNormalizes(t *testing.T) {
	def := map[string]any{
		"initial": "a",
		"states":  map[string]any{"a": map[string]any{"type": "parallel"}},
	}

	graph, err := compiler.NewParser().Compile(def)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDefault, mustNode(t, graph, "a").Kind)
}

func mustNode(t *testing.T, g *domain.MachineGraph, id string) *domain.StateNode {
	t.Helper()
	node, ok := g.Node(id)
	require.True(t, ok, "node %s missing", id)
	return node
}
