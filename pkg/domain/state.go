package domain

// SimulationState is a snapshot of one running simulation: the active
// state, a monotonically increasing step counter, the ordered history
// of visited state ids (always steps+1 long) and a human-readable log.
//
// The owning simulator hands out value copies only; see Clone.
type SimulationState struct {
	ActiveStateID string   `json:"activeStateId"`
	Steps         int      `json:"steps"`
	History       []string `json:"history"`
	Log           []string `json:"log"`
}

// NewSimulationState seeds a snapshot at the given initial state.
func NewSimulationState(initial string) SimulationState {
	return SimulationState{
		ActiveStateID: initial,
		Steps:         0,
		History:       []string{initial},
		Log:           []string{"Initialized at '" + initial + "'"},
	}
}

// Clone returns a deep copy of the snapshot.
func (s SimulationState) Clone() SimulationState {
	cp := s
	cp.History = append([]string(nil), s.History...)
	cp.Log = append([]string(nil), s.Log...)
	return cp
}
