package domain

// StateKind classifies a node's role in the machine graph.
type StateKind string

const (
	// KindInitial marks the entry state of the machine.
	KindInitial StateKind = "initial"
	// KindFinal marks a terminal state; final states are never
	// reported as dead ends even without outgoing transitions.
	KindFinal StateKind = "final"
	// KindDefault is every other state.
	KindDefault StateKind = "default"
)

// NormalizeKind maps a raw definition `type` string to a StateKind.
// Unknown values fall back to KindDefault.
func NormalizeKind(raw string) StateKind {
	switch StateKind(raw) {
	case KindInitial, KindFinal:
		return StateKind(raw)
	default:
		return KindDefault
	}
}
