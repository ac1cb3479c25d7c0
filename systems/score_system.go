package systems

import (
	"ebiten-outrun/ecs"
)

// ScoreSystem adds one point per executed frame. Speed and elapsed time
// play no part.
type ScoreSystem struct{}

// NewScoreSystem creates a new score system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Update increments the score of the current run
func (s *ScoreSystem) Update(world *ecs.World, dt float64) {
	world.Run.Score++
}
