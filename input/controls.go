package input

import (
	"ebiten-outrun/components"
)

// Control is one logical input the simulation queries
type Control int

const (
	Accelerate Control = iota
	SteerLeft
	SteerRight
	Quit
)

// String returns the control's name
func (c Control) String() string {
	switch c {
	case Accelerate:
		return "accelerate"
	case SteerLeft:
		return "steer-left"
	case SteerRight:
		return "steer-right"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source reports the instantaneous held state of a control. Implementations
// must not block.
type Source interface {
	IsPressed(c Control) bool
}

// Sample reads the driving controls from src
func Sample(src Source) components.ControlsComponent {
	return components.ControlsComponent{
		Accelerate: src.IsPressed(Accelerate),
		SteerLeft:  src.IsPressed(SteerLeft),
		SteerRight: src.IsPressed(SteerRight),
	}
}

// Static is a Source with a fixed set of held controls
type Static map[Control]bool

// IsPressed implements Source
func (s Static) IsPressed(c Control) bool {
	return s[c]
}
