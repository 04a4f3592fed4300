package schema

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode normalizes an untyped definition value into a MachineDef.
//
// It accepts an already-typed *MachineDef (passed through), or any
// JSON/YAML-shaped map. Structural problems are reported as
// *ParseError and nothing else: callers can rely on the error codes
// to classify failures. Decode performs no reference validation; the
// compiler checks that the initial id and every transition target
// name declared states.
func Decode(raw any) (*MachineDef, error) {
	switch v := raw.(type) {
	case *MachineDef:
		if err := checkTyped(v); err != nil {
			return nil, err
		}
		return v, nil
	case MachineDef:
		if err := checkTyped(&v); err != nil {
			return nil, err
		}
		return &v, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, NewParseError(CodeInvalidSchema, "", "definition must be an object, got %T", raw)
	}

	statesRaw, ok := m["states"]
	if !ok {
		return nil, NewParseError(CodeInvalidSchema, "states", "definition has no states mapping")
	}
	if _, ok := statesRaw.(map[string]any); !ok {
		return nil, NewParseError(CodeInvalidSchema, "states", "states must be an object, got %T", statesRaw)
	}
	if _, ok := m["initial"].(string); !ok {
		return nil, NewParseError(CodeMissingInitial, "initial", "initial must be a string")
	}

	var def MachineDef
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: transitionShorthandHook,
		Result:     &def,
	})
	if err != nil {
		return nil, NewParseError(CodeInvalidSchema, "", "decoder setup failed: %v", err)
	}
	if err := decoder.Decode(m); err != nil {
		return nil, NewParseError(CodeInvalidSchema, "", "malformed definition: %v", err)
	}
	return &def, nil
}

func checkTyped(def *MachineDef) error {
	if def.States == nil {
		return NewParseError(CodeInvalidSchema, "states", "definition has no states mapping")
	}
	if def.Initial == "" {
		return NewParseError(CodeMissingInitial, "initial", "initial must be a non-empty string")
	}
	return nil
}

// transitionShorthandHook expands the bare-string transition form
// ("NEXT": "done") into a TransitionDef with an empty guard and no
// actions, mirroring the JSON/YAML unmarshalers.
func transitionShorthandHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(TransitionDef{}) || from.Kind() != reflect.String {
		return data, nil
	}
	return TransitionDef{Target: data.(string)}, nil
}
