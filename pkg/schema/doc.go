// Package schema defines the wire shape of a machine definition and
// the parse errors produced while turning an untyped value into one.
//
// A definition is JSON-shaped:
//
//	{
//	  "initial": "idle",
//	  "states": {
//	    "idle": {"on": {"START": "running"}},
//	    "running": {
//	      "type": "default",
//	      "on": {"STOP": {"target": "idle", "cond": "canStop", "actions": ["notify"]}}
//	    }
//	  }
//	}
//
// A transition accepts two forms: a bare string target (shorthand for
// a transition with no guard and no actions) or the full object form.
// Both JSON and YAML sources are supported, as is decoding from an
// already-unmarshaled map[string]any.
package schema
