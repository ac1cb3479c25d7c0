package config

import (
	"errors"
	"fmt"
	"time"
)

// SpawnGate is a per-frame Bernoulli trial: draw an integer in [1, Range] and
// spawn when the draw exceeds Threshold.
type SpawnGate struct {
	Range     int `json:"range" yaml:"range"`
	Threshold int `json:"threshold" yaml:"threshold"`
}

// Probability returns the chance that the gate fires on a single frame.
func (g SpawnGate) Probability() float64 {
	if g.Range <= 0 {
		return 0
	}
	return float64(g.Range-g.Threshold) / float64(g.Range)
}

// Tuning holds every gameplay parameter of the simulation. The zero value is
// not usable; start from DefaultTuning.
type Tuning struct {
	// Player physics
	BaseSpeed    float64 `json:"baseSpeed" yaml:"base_speed"`
	MaxSpeed     float64 `json:"maxSpeed" yaml:"max_speed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Friction     float64 `json:"friction" yaml:"friction"`
	TurnStep     int     `json:"turnStep" yaml:"turn_step"`

	// Boost pickups raise speed by BoostGain, capped at MaxSpeed+BoostBonus
	BoostGain  float64 `json:"boostGain" yaml:"boost_gain"`
	BoostBonus float64 `json:"boostBonus" yaml:"boost_bonus"`

	// Proximity thresholds (strict less-than on both axes)
	CrashThresholdX  int `json:"crashThresholdX" yaml:"crash_threshold_x"`
	CrashThresholdY  int `json:"crashThresholdY" yaml:"crash_threshold_y"`
	PickupThresholdX int `json:"pickupThresholdX" yaml:"pickup_threshold_x"`
	PickupThresholdY int `json:"pickupThresholdY" yaml:"pickup_threshold_y"`

	// Spawning
	TrafficGate       SpawnGate `json:"trafficGate" yaml:"traffic_gate"`
	TreeGate          SpawnGate `json:"treeGate" yaml:"tree_gate"`
	BoostGate         SpawnGate `json:"boostGate" yaml:"boost_gate"`
	TrafficLaneOffset int       `json:"trafficLaneOffset" yaml:"traffic_lane_offset"`
	BoostLaneOffset   int       `json:"boostLaneOffset" yaml:"boost_lane_offset"`
	TreeSideOffset    int       `json:"treeSideOffset" yaml:"tree_side_offset"`
	TrafficSpeedMin   int       `json:"trafficSpeedMin" yaml:"traffic_speed_min"`
	TrafficSpeedMax   int       `json:"trafficSpeedMax" yaml:"traffic_speed_max"`

	// Crash handling
	CrashPauseMS int `json:"crashPauseMs" yaml:"crash_pause_ms"`

	FPS int `json:"fps" yaml:"fps"`
}

// DefaultTuning returns the stock parameters of the game.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:    5,
		MaxSpeed:     12,
		Acceleration: 0.2,
		Friction:     0.1,
		TurnStep:     7,

		BoostGain:  3,
		BoostBonus: 5,

		CrashThresholdX:  40,
		CrashThresholdY:  80,
		PickupThresholdX: 30,
		PickupThresholdY: 50,

		TrafficGate:       SpawnGate{Range: 100, Threshold: 97},
		TreeGate:          SpawnGate{Range: 10, Threshold: 8},
		BoostGate:         SpawnGate{Range: 300, Threshold: 298},
		TrafficLaneOffset: 10,
		BoostLaneOffset:   20,
		TreeSideOffset:    80,
		TrafficSpeedMin:   4,
		TrafficSpeedMax:   8,

		CrashPauseMS: 1000,

		FPS: FPS,
	}
}

// SpeedCeiling is the highest speed reachable, only through boost pickups.
func (t Tuning) SpeedCeiling() float64 {
	return t.MaxSpeed + t.BoostBonus
}

// CrashPause returns the dead time between a crash and the restart.
func (t Tuning) CrashPause() time.Duration {
	return time.Duration(t.CrashPauseMS) * time.Millisecond
}

// Validate reports every inconsistent parameter at once.
func (t Tuning) Validate() error {
	var errs []error

	if t.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base speed must be positive, got %v", t.BaseSpeed))
	}
	if t.MaxSpeed < t.BaseSpeed {
		errs = append(errs, fmt.Errorf("max speed %v is below base speed %v", t.MaxSpeed, t.BaseSpeed))
	}
	if t.Acceleration < 0 || t.Friction < 0 {
		errs = append(errs, errors.New("acceleration and friction must not be negative"))
	}
	if t.TurnStep <= 0 {
		errs = append(errs, fmt.Errorf("turn step must be positive, got %d", t.TurnStep))
	}
	if t.BoostGain < 0 || t.BoostBonus < 0 {
		errs = append(errs, errors.New("boost gain and bonus must not be negative"))
	}
	if t.CrashThresholdX <= 0 || t.CrashThresholdY <= 0 || t.PickupThresholdX <= 0 || t.PickupThresholdY <= 0 {
		errs = append(errs, errors.New("collision thresholds must be positive"))
	}

	gates := []struct {
		name string
		gate SpawnGate
	}{
		{"traffic", t.TrafficGate},
		{"tree", t.TreeGate},
		{"boost", t.BoostGate},
	}
	for _, g := range gates {
		if g.gate.Range <= 0 {
			errs = append(errs, fmt.Errorf("%s gate range must be positive, got %d", g.name, g.gate.Range))
			continue
		}
		if g.gate.Threshold < 0 || g.gate.Threshold > g.gate.Range {
			errs = append(errs, fmt.Errorf("%s gate threshold %d outside [0,%d]", g.name, g.gate.Threshold, g.gate.Range))
		}
	}

	// Traffic must move down, or it would never leave the screen.
	if t.TrafficSpeedMin <= 0 || t.TrafficSpeedMax < t.TrafficSpeedMin {
		errs = append(errs, fmt.Errorf("traffic speed range [%d,%d] is invalid", t.TrafficSpeedMin, t.TrafficSpeedMax))
	}
	if t.CrashPauseMS < 0 {
		errs = append(errs, fmt.Errorf("crash pause must not be negative, got %dms", t.CrashPauseMS))
	}
	if t.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", t.FPS))
	}

	return errors.Join(errs...)
}
