package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MachineDef is the declarative definition of a machine.
type MachineDef struct {
	ID      string              `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	Initial string              `json:"initial" yaml:"initial" mapstructure:"initial"`
	States  map[string]StateDef `json:"states" yaml:"states" mapstructure:"states"`
}

// StateDef declares one state: its transition table, kind and open
// metadata.
type StateDef struct {
	On   map[string]TransitionDef `json:"on,omitempty" yaml:"on,omitempty" mapstructure:"on"`
	Type string                   `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Meta map[string]any           `json:"meta,omitempty" yaml:"meta,omitempty" mapstructure:"meta"`
}

// TransitionDef declares one event-labeled edge. In serialized form
// it is either a bare string (just the target) or the full object;
// the custom marshalers below keep both forms working in JSON and
// YAML. The bare form is the canonical output whenever the transition
// carries no guard and no actions.
type TransitionDef struct {
	Target  string   `json:"target" yaml:"target" mapstructure:"target"`
	Cond    string   `json:"cond,omitempty" yaml:"cond,omitempty" mapstructure:"cond"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty" mapstructure:"actions"`
}

// shorthand reports whether the bare-string form can represent t.
func (t TransitionDef) shorthand() bool {
	return t.Cond == "" && len(t.Actions) == 0
}

// transitionDefObject mirrors TransitionDef without its marshalers,
// to avoid infinite recursion in the custom (un)marshaling below.
type transitionDefObject struct {
	Target  string   `json:"target" yaml:"target"`
	Cond    string   `json:"cond,omitempty" yaml:"cond,omitempty"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// MarshalJSON emits the bare-string shorthand when possible.
func (t TransitionDef) MarshalJSON() ([]byte, error) {
	if t.shorthand() {
		return json.Marshal(t.Target)
	}
	return json.Marshal(transitionDefObject(t))
}

// UnmarshalJSON accepts both the bare-string and the object form.
func (t *TransitionDef) UnmarshalJSON(data []byte) error {
	var target string
	if err := json.Unmarshal(data, &target); err == nil {
		*t = TransitionDef{Target: target}
		return nil
	}

	var obj transitionDefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("transition must be a string or an object: %w", err)
	}
	*t = TransitionDef(obj)
	return nil
}

// MarshalYAML emits the bare-string shorthand when possible.
func (t TransitionDef) MarshalYAML() (any, error) {
	if t.shorthand() {
		return t.Target, nil
	}
	return transitionDefObject(t), nil
}

// UnmarshalYAML accepts both the bare-string and the object form.
func (t *TransitionDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var target string
		if err := value.Decode(&target); err != nil {
			return fmt.Errorf("transition target must be a string: %w", err)
		}
		*t = TransitionDef{Target: target}
		return nil
	}

	var obj transitionDefObject
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("transition must be a string or an object: %w", err)
	}
	*t = TransitionDef(obj)
	return nil
}
