package spawners

import (
	"log/slog"
	"math/rand/v2"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

// Rand is the uniform integer source behind every spawn decision.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n)
	IntN(n int) int
}

// NewRand returns a deterministic generator for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// EntitySpawner injects traffic, roadside trees and boosts at the top of the
// screen. Each kind has its own independent gate per frame, so all three may
// spawn on the same frame.
type EntitySpawner struct {
	tuning config.Tuning
	rng    Rand
	logger *slog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(tuning config.Tuning, rng Rand, logger *slog.Logger) *EntitySpawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntitySpawner{
		tuning: tuning,
		rng:    rng,
		logger: logger.With("component", "spawner"),
	}
}

// Update runs the three spawn gates for one frame
func (s *EntitySpawner) Update(world *ecs.World, dt float64) {
	s.SpawnTraffic(world)
	s.SpawnTree(world)
	s.SpawnBoost(world)
}

// SpawnTraffic rolls the traffic gate and, on success, adds a car in a random
// lane with a random descent speed
func (s *EntitySpawner) SpawnTraffic(world *ecs.World) (ecs.Entity, bool) {
	if !s.pass(s.tuning.TrafficGate) {
		return ecs.Entity{}, false
	}
	lane := s.roll(0, config.LaneCount-1)
	speed := s.roll(s.tuning.TrafficSpeedMin, s.tuning.TrafficSpeedMax)
	return s.CreateTraffic(world, lane, speed), true
}

// SpawnTree rolls the tree gate and, on success, adds a tree on a random side
// of the road
func (s *EntitySpawner) SpawnTree(world *ecs.World) (ecs.Entity, bool) {
	if !s.pass(s.tuning.TreeGate) {
		return ecs.Entity{}, false
	}
	return s.CreateTree(world, s.roll(0, 1) == 1), true
}

// SpawnBoost rolls the boost gate and, on success, adds a boost in a random lane
func (s *EntitySpawner) SpawnBoost(world *ecs.World) (ecs.Entity, bool) {
	if !s.pass(s.tuning.BoostGate) {
		return ecs.Entity{}, false
	}
	return s.CreateBoost(world, s.roll(0, config.LaneCount-1)), true
}

// CreateTraffic adds a traffic car in lane at the spawn row
func (s *EntitySpawner) CreateTraffic(world *ecs.World, lane, descentSpeed int) ecs.Entity {
	x := LaneX(lane, s.tuning.TrafficLaneOffset)
	e := world.Entities.Add(ecs.KindTraffic, float64(x), config.SpawnY, descentSpeed)
	s.logger.Debug("spawned traffic", "id", e.ID, "lane", lane, "speed", descentSpeed)
	return e
}

// CreateTree adds a tree left of the road, or right of it when right is set
func (s *EntitySpawner) CreateTree(world *ecs.World, right bool) ecs.Entity {
	x := config.RoadLeft - s.tuning.TreeSideOffset
	if right {
		x = config.RoadRight
	}
	return world.Entities.Add(ecs.KindTree, float64(x), config.SpawnY, 0)
}

// CreateBoost adds a speed boost in lane at the spawn row
func (s *EntitySpawner) CreateBoost(world *ecs.World, lane int) ecs.Entity {
	x := LaneX(lane, s.tuning.BoostLaneOffset)
	e := world.Entities.Add(ecs.KindBoost, float64(x), config.SpawnY, 0)
	s.logger.Debug("spawned boost", "id", e.ID, "lane", lane)
	return e
}

// LaneX returns the x coordinate of an object placed offset pixels into lane
func LaneX(lane, offset int) int {
	return config.RoadLeft + lane*config.LaneWidth + offset
}

// pass draws an integer in [1, Range] and reports whether it beats the threshold
func (s *EntitySpawner) pass(g config.SpawnGate) bool {
	return s.roll(1, g.Range) > g.Threshold
}

// roll returns a uniform integer in [lo, hi]
func (s *EntitySpawner) roll(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
