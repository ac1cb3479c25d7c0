package systems

import (
	"math"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

// PlayerSystem applies the sampled controls to the player's car
type PlayerSystem struct {
	tuning config.Tuning

	// Lateral range the car may be steered within
	minX, maxX int
}

// NewPlayerSystem creates a player system for the standard road
func NewPlayerSystem(tuning config.Tuning) *PlayerSystem {
	return &PlayerSystem{
		tuning: tuning,
		minX:   config.RoadLeft,
		maxX:   config.RoadRight - config.PlayerWidth,
	}
}

// Update handles throttle and steering for one frame
func (s *PlayerSystem) Update(world *ecs.World, dt float64) {
	s.updateSpeed(world)
	s.updateSteering(world)
}

// updateSpeed accelerates towards MaxSpeed while the throttle is held and
// otherwise decays towards BaseSpeed. Holding the throttle while boosted
// above MaxSpeed drops the car straight back to MaxSpeed.
func (s *PlayerSystem) updateSpeed(world *ecs.World) {
	player := world.Player
	if world.Controls.Accelerate {
		player.Speed = math.Min(player.Speed+s.tuning.Acceleration, s.tuning.MaxSpeed)
		return
	}
	player.Speed = math.Max(player.Speed-s.tuning.Friction, s.tuning.BaseSpeed)
}

// updateSteering moves the car one turn step per held direction. A step that
// would carry the car past the road edge is skipped for the frame; the
// position is never snapped onto the edge.
func (s *PlayerSystem) updateSteering(world *ecs.World) {
	player := world.Player
	step := s.tuning.TurnStep
	if world.Controls.SteerLeft && player.X > s.minX && player.X-step >= s.minX {
		player.X -= step
	}
	if world.Controls.SteerRight && player.X < s.maxX && player.X+step <= s.maxX {
		player.X += step
	}
}
