package ecs

import (
	"ebiten-outrun/components"
)

// World aggregates all mutable simulation state: the entity collections, the
// player, the current run and the controls sampled for this frame. It is
// owned by a single writer, the state machine driving the frame loop.
type World struct {
	Entities *EntityStore
	Player   *components.PlayerComponent
	Run      *components.RunComponent

	// Controls is the input sampled at the start of the current frame
	Controls components.ControlsComponent

	// Systems slice to store all systems
	systems []System
	// Event manager for system communication
	eventManager *EventManager
	// halted stops the remaining systems of the current frame
	halted bool
}

// NewWorld creates a world with an empty entity store. The player and run
// components must be set by the caller before the first Update.
func NewWorld() *World {
	return &World{
		Entities:     NewEntityStore(),
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
	}
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// Update runs one frame of every system in registration order. A system may
// call Halt to skip the systems after it; Update reports whether that
// happened. The halt flag is cleared at the start of each frame.
func (w *World) Update(dt float64) (halted bool) {
	w.halted = false
	for _, system := range w.systems {
		system.Update(w, dt)
		if w.halted {
			return true
		}
	}
	return false
}

// Halt stops the current frame after the running system returns
func (w *World) Halt() {
	w.halted = true
}

// Halted reports whether the current frame was halted
func (w *World) Halted() bool {
	return w.halted
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
