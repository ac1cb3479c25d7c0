package systems

import (
	"github.com/google/uuid"

	"ebiten-outrun/ecs"
)

// Event type constants
const (
	EventCrash  ecs.EventType = "crash"
	EventPickup ecs.EventType = "pickup"
	EventReset  ecs.EventType = "reset"
	EventCull   ecs.EventType = "cull"
)

// CrashEvent is emitted when the player comes within the crash thresholds of
// a traffic car
type CrashEvent struct {
	Car              ecs.Entity // The first car found within range
	PlayerX, PlayerY int
	Score            int // Score of the run that just ended
}

// Type returns the event type
func (e CrashEvent) Type() ecs.EventType {
	return EventCrash
}

// PickupEvent is emitted when the player consumes a boost
type PickupEvent struct {
	Boost    ecs.Entity
	OldSpeed float64
	NewSpeed float64
}

// Type returns the event type
func (e PickupEvent) Type() ecs.EventType {
	return EventPickup
}

// ResetEvent is emitted after a crash once the world has been cleared and a
// new run has started
type ResetEvent struct {
	PreviousRun   uuid.UUID
	PreviousScore int
	Run           uuid.UUID
}

// Type returns the event type
func (e ResetEvent) Type() ecs.EventType {
	return EventReset
}

// CullEvent is emitted when entities scroll off the bottom of the screen
type CullEvent struct {
	Kind  ecs.Kind
	Count int
}

// Type returns the event type
func (e CullEvent) Type() ecs.EventType {
	return EventCull
}
