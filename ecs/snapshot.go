package ecs

// Snapshot is the read-only view of one frame handed to a renderer. Entity
// slices are copies; the renderer may keep them.
type Snapshot struct {
	Frame uint64

	PlayerX, PlayerY int
	Speed            float64

	// Draw order: trees, boosts, traffic, then the player
	Trees   []Entity
	Boosts  []Entity
	Traffic []Entity

	Score int

	// Crashed marks the frame on which a crash reset the run
	Crashed bool
}

// Snapshot captures the current world state for rendering
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Trees:   w.Entities.View(KindTree),
		Boosts:  w.Entities.View(KindBoost),
		Traffic: w.Entities.View(KindTraffic),
	}
	if w.Player != nil {
		snap.PlayerX = w.Player.X
		snap.PlayerY = w.Player.Y
		snap.Speed = w.Player.Speed
	}
	if w.Run != nil {
		snap.Score = w.Run.Score
		snap.Frame = w.Run.Frames
	}
	return snap
}
