package game

import (
	"log/slog"
	"time"

	"ebiten-outrun/components"
	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
	"ebiten-outrun/spawners"
	"ebiten-outrun/systems"
)

// State is the phase of the state machine
type State int

const (
	// Running is the normal phase; every Step executes a full frame
	Running State = iota
	// Crashed lasts only for the crash pause inside Step
	Crashed
)

// String returns the state's name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Sleeper blocks the caller for d. time.Sleep is the production sleeper.
type Sleeper func(d time.Duration)

// Option configures a StateMachine
type Option func(*StateMachine)

// WithSleeper replaces the real-time crash pause
func WithSleeper(sleep Sleeper) Option {
	return func(m *StateMachine) {
		m.sleep = sleep
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		m.logger = logger
	}
}

// StateMachine owns the world and runs one frame per Step: controls,
// player, spawn, move, collide, score. A crash pauses for the configured
// dead time, then resets the player, the run and every entity collection.
type StateMachine struct {
	world  *ecs.World
	tuning config.Tuning
	sleep  Sleeper
	logger *slog.Logger

	state        State
	crashPending bool
}

// NewStateMachine builds a world with the standard systems. rng drives every
// spawn decision; a fixed seed gives a reproducible session.
func NewStateMachine(tuning config.Tuning, rng spawners.Rand, opts ...Option) *StateMachine {
	m := &StateMachine{
		tuning: tuning,
		sleep:  time.Sleep,
		logger: slog.Default(),
		state:  Running,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "game")

	world := ecs.NewWorld()
	world.Player = components.NewPlayerComponent(tuning.BaseSpeed)
	world.Run = components.NewRunComponent()

	// Registration order is frame order.
	world.AddSystem(systems.NewPlayerSystem(tuning))
	world.AddSystem(spawners.NewEntitySpawner(tuning, rng, m.logger))
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewCollisionSystem(tuning))
	world.AddSystem(systems.NewScoreSystem())

	world.GetEventManager().Subscribe(systems.EventCrash, func(event ecs.Event) {
		m.crashPending = true
	})
	world.GetEventManager().Subscribe(systems.EventPickup, func(event ecs.Event) {
		pickup := event.(systems.PickupEvent)
		m.logger.Debug("boost collected", "run", world.Run.ID, "from", pickup.OldSpeed, "to", pickup.NewSpeed)
	})

	m.world = world
	m.logger.Info("run started", "run", world.Run.ID)
	return m
}

// World returns the simulated world. Callers must not keep entity data
// across frames.
func (m *StateMachine) World() *ecs.World {
	return m.world
}

// State returns the current phase
func (m *StateMachine) State() State {
	return m.state
}

// Tuning returns the parameters the machine was built with
func (m *StateMachine) Tuning() config.Tuning {
	return m.tuning
}

// Step executes one frame with the given controls and returns the frame's
// snapshot. On a crash frame Step blocks for the crash pause and the
// returned snapshot shows the freshly reset world.
func (m *StateMachine) Step(controls components.ControlsComponent) ecs.Snapshot {
	w := m.world
	w.Run.Frames++
	w.Controls = controls

	m.crashPending = false
	w.Update(1.0 / float64(m.tuning.FPS))

	if m.crashPending {
		m.crash()
		snap := w.Snapshot()
		snap.Crashed = true
		return snap
	}
	return w.Snapshot()
}

// crash performs the Running -> Crashed -> Running transition
func (m *StateMachine) crash() {
	m.state = Crashed
	m.logger.Info("crashed", "run", m.world.Run.ID, "score", m.world.Run.Score, "frame", m.world.Run.Frames)

	// Nothing else runs during the pause: no input, no motion, no drawing.
	m.sleep(m.tuning.CrashPause())

	m.Reset()
}

// Reset starts a new run: player back at the start, score zero, all
// entity collections empty
func (m *StateMachine) Reset() {
	w := m.world
	previous, score := w.Run.ID, w.Run.Score

	w.Player.Reset(m.tuning.BaseSpeed)
	w.Run.Restart()
	w.Entities.Clear()
	m.state = Running

	w.EmitEvent(systems.ResetEvent{PreviousRun: previous, PreviousScore: score, Run: w.Run.ID})
	m.logger.Info("run started", "run", w.Run.ID, "previous", previous, "crashes", w.Run.Crashes)
}
