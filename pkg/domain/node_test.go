package domain

import (
	"reflect"
	"testing"
)

func TestSetTransition_LastWriteWins(t *testing.T) {
	n := NewStateNode("a", KindDefault, nil)
	n.SetTransition(Transition{From: "a", To: "b", Event: "GO"})
	n.SetTransition(Transition{From: "a", To: "c", Event: "STOP"})

	// Re-registering GO must overwrite the earlier edge, keeping its
	// position in the outgoing order. This pins the deliberate
	// last-write-wins insertion policy.
	n.SetTransition(Transition{From: "a", To: "z", Event: "GO"})

	if n.Degree() != 2 {
		t.Fatalf("Degree() = %d, want 2", n.Degree())
	}

	got, ok := n.TransitionFor("GO")
	if !ok {
		t.Fatal("TransitionFor(GO) not found")
	}
	if got.To != "z" {
		t.Errorf("overwritten transition target = %q, want z", got.To)
	}

	events := n.Events()
	want := []string{"GO", "STOP"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Events() = %v, want %v (overwrite must keep position)", events, want)
	}
}

func TestTransitionFor_ReturnsCopy(t *testing.T) {
	n := NewStateNode("a", KindDefault, nil)
	n.SetTransition(Transition{From: "a", To: "b", Event: "GO", Actions: []string{"log"}})

	got, _ := n.TransitionFor("GO")
	got.Actions[0] = "mutated"

	again, _ := n.TransitionFor("GO")
	if again.Actions[0] != "log" {
		t.Errorf("node transition mutated through returned copy: %v", again.Actions)
	}
}

func TestTransitionFor_Missing(t *testing.T) {
	n := NewStateNode("a", KindFinal, nil)
	if _, ok := n.TransitionFor("NOPE"); ok {
		t.Error("TransitionFor on empty node should report absence")
	}
	if events := n.Events(); len(events) != 0 {
		t.Errorf("Events() on exit-less node = %v, want empty", events)
	}
}

func TestNormalizeKind(t *testing.T) {
	cases := map[string]StateKind{
		"initial": KindInitial,
		"final":   KindFinal,
		"default": KindDefault,
		"":        KindDefault,
		"weird":   KindDefault,
	}
	for raw, want := range cases {
		if got := NormalizeKind(raw); got != want {
			t.Errorf("NormalizeKind(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSimulationState_Clone(t *testing.T) {
	s := NewSimulationState("idle")
	if s.ActiveStateID != "idle" || s.Steps != 0 {
		t.Fatalf("unexpected seed state: %+v", s)
	}
	if len(s.History) != 1 || s.History[0] != "idle" {
		t.Fatalf("seed history = %v, want [idle]", s.History)
	}
	if len(s.Log) != 1 || s.Log[0] != "Initialized at 'idle'" {
		t.Fatalf("seed log = %v", s.Log)
	}

	cp := s.Clone()
	cp.History[0] = "mutated"
	cp.Log[0] = "mutated"
	if s.History[0] != "idle" || s.Log[0] != "Initialized at 'idle'" {
		t.Error("Clone must deep-copy history and log")
	}
}

func TestMachineGraph_Counts(t *testing.T) {
	a := NewStateNode("a", KindInitial, nil)
	a.SetTransition(Transition{From: "a", To: "b", Event: "GO"})
	b := NewStateNode("b", KindFinal, nil)

	g := NewMachineGraph("m", "a", map[string]*StateNode{"a": a, "b": b})

	if g.StateCount() != 2 {
		t.Errorf("StateCount() = %d, want 2", g.StateCount())
	}
	if g.TransitionCount() != 1 {
		t.Errorf("TransitionCount() = %d, want 1", g.TransitionCount())
	}
	if ids := g.StateIDs(); !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Errorf("StateIDs() = %v, want sorted [a b]", ids)
	}
}
