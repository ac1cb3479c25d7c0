package components

import (
	"ebiten-outrun/config"
)

// PlayerComponent holds the player's car state. Y is fixed for the whole
// session; only X and Speed change.
type PlayerComponent struct {
	X, Y  int
	Speed float64
}

// NewPlayerComponent creates a player at the start position moving at speed
func NewPlayerComponent(speed float64) *PlayerComponent {
	return &PlayerComponent{
		X:     config.PlayerStartX,
		Y:     config.PlayerY,
		Speed: speed,
	}
}

// Reset moves the player back to the start position at speed
func (p *PlayerComponent) Reset(speed float64) {
	p.X = config.PlayerStartX
	p.Y = config.PlayerY
	p.Speed = speed
}
