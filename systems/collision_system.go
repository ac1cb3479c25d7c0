package systems

import (
	"math"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

// CollisionSystem tests the player against traffic (crash) and boosts
// (pickup). Both tests compare the distance between top-left corners on each
// axis against a fixed threshold; sprite sizes play no part.
type CollisionSystem struct {
	tuning config.Tuning
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tuning config.Tuning) *CollisionSystem {
	return &CollisionSystem{tuning: tuning}
}

// Update checks for a crash first. A crash emits CrashEvent and halts the
// frame; otherwise boosts in reach are consumed.
func (s *CollisionSystem) Update(world *ecs.World, dt float64) {
	if car, hit := s.CheckCrash(world); hit {
		world.EmitEvent(CrashEvent{
			Car:     car,
			PlayerX: world.Player.X,
			PlayerY: world.Player.Y,
			Score:   world.Run.Score,
		})
		world.Halt()
		return
	}

	s.CollectBoosts(world)
}

// CheckCrash returns the first traffic car within crash range of the player
func (s *CollisionSystem) CheckCrash(world *ecs.World) (ecs.Entity, bool) {
	for _, car := range world.Entities.View(ecs.KindTraffic) {
		if near(world, car, s.tuning.CrashThresholdX, s.tuning.CrashThresholdY) {
			return car, true
		}
	}
	return ecs.Entity{}, false
}

// CollectBoosts consumes every boost within pickup range and returns how many
// were taken. Each pickup adds BoostGain to the speed, capped at the boost
// ceiling.
func (s *CollisionSystem) CollectBoosts(world *ecs.World) int {
	collected := 0
	ceiling := s.tuning.SpeedCeiling()

	// Iterate over a copy; RemoveOne replaces the live collection.
	for _, boost := range world.Entities.View(ecs.KindBoost) {
		if !near(world, boost, s.tuning.PickupThresholdX, s.tuning.PickupThresholdY) {
			continue
		}
		if !world.Entities.RemoveOne(ecs.KindBoost, boost.ID) {
			continue
		}

		old := world.Player.Speed
		world.Player.Speed = math.Min(old+s.tuning.BoostGain, ceiling)
		collected++

		world.EmitEvent(PickupEvent{Boost: boost, OldSpeed: old, NewSpeed: world.Player.Speed})
	}
	return collected
}

// near reports whether e is strictly within dx and dy of the player
func near(world *ecs.World, e ecs.Entity, dx, dy int) bool {
	return math.Abs(float64(world.Player.X)-e.X) < float64(dx) &&
		math.Abs(float64(world.Player.Y)-e.Y) < float64(dy)
}
