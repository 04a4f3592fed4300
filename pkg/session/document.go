package session

import (
	"time"

	"github.com/machina-fsm/machina/pkg/schema"
)

// Version is the fixed session document format version.
const Version = "1.0.0"

// SimulationRecord is the persisted slice of a simulation: its
// visited history, human-readable log and step counter.
type SimulationRecord struct {
	History     []string `json:"history"`
	Log         []string `json:"log"`
	CurrentStep int      `json:"currentStep"`
}

// Meta carries document provenance.
type Meta struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Version   string    `json:"version"`
}

// Document is the persisted session bundle handed to external
// persistence collaborators.
type Document struct {
	Machine    *schema.MachineDef `json:"machine"`
	Simulation *SimulationRecord  `json:"simulation,omitempty"`
	Meta       *Meta              `json:"meta,omitempty"`
}
