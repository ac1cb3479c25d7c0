package components

import (
	"github.com/google/uuid"
)

// RunComponent tracks one run, from start or restart until the next crash
type RunComponent struct {
	// ID correlates log lines of one run
	ID uuid.UUID

	// Score counts executed frames since the run started
	Score int

	// Frames and Crashes span the whole session and survive restarts
	Frames  uint64
	Crashes int
}

// NewRunComponent starts the first run of a session
func NewRunComponent() *RunComponent {
	return &RunComponent{ID: uuid.New()}
}

// Restart begins a new run after a crash
func (r *RunComponent) Restart() {
	r.ID = uuid.New()
	r.Score = 0
	r.Crashes++
}
