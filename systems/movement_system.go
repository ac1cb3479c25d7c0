package systems

import (
	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

// MovementSystem scrolls every entity down the screen and evicts the ones
// that have left it. Traffic falls at its own descent speed; trees and
// boosts are fixed to the road and move at the player's speed.
type MovementSystem struct {
	screenHeight float64
}

// NewMovementSystem creates a movement system for the standard screen
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{screenHeight: config.ScreenHeight}
}

// Update advances then culls, every frame
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	s.Advance(world)
	s.Cull(world)
}

// Advance moves every entity down by one frame's worth of motion
func (s *MovementSystem) Advance(world *ecs.World) {
	world.Entities.Advance(ecs.KindTraffic, func(e *ecs.Entity) {
		e.Y += float64(e.DescentSpeed)
	})

	scroll := world.Player.Speed
	world.Entities.Advance(ecs.KindTree, func(e *ecs.Entity) {
		e.Y += scroll
	})
	world.Entities.Advance(ecs.KindBoost, func(e *ecs.Entity) {
		e.Y += scroll
	})
}

// Cull removes entities at or below the bottom edge and returns how many
// were removed in total
func (s *MovementSystem) Cull(world *ecs.World) int {
	total := 0
	for _, kind := range ecs.Kinds {
		removed := world.Entities.Prune(kind, s.onScreen)
		if removed > 0 {
			world.EmitEvent(CullEvent{Kind: kind, Count: removed})
		}
		total += removed
	}
	return total
}

func (s *MovementSystem) onScreen(e ecs.Entity) bool {
	return e.Y < s.screenHeight
}
