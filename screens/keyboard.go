package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-outrun/input"
)

// Keyboard is an input.Source over ebiten's key state
type Keyboard struct {
	// Map of keys to controls
	bindings map[ebiten.Key]input.Control
}

// NewKeyboard creates a keyboard source with the default bindings
func NewKeyboard() *Keyboard {
	k := &Keyboard{
		bindings: make(map[ebiten.Key]input.Control),
	}

	// Arrow keys
	k.bindings[ebiten.KeyArrowUp] = input.Accelerate
	k.bindings[ebiten.KeyArrowLeft] = input.SteerLeft
	k.bindings[ebiten.KeyArrowRight] = input.SteerRight

	// WASD
	k.bindings[ebiten.KeyW] = input.Accelerate
	k.bindings[ebiten.KeyA] = input.SteerLeft
	k.bindings[ebiten.KeyD] = input.SteerRight

	k.bindings[ebiten.KeyQ] = input.Quit

	return k
}

// Bind maps key to control, replacing any previous binding of key
func (k *Keyboard) Bind(key ebiten.Key, c input.Control) {
	k.bindings[key] = c
}

// IsPressed implements input.Source
func (k *Keyboard) IsPressed(c input.Control) bool {
	for key, bound := range k.bindings {
		if bound == c && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
