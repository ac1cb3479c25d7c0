package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
	"ebiten-outrun/game"
	"ebiten-outrun/input"
	"ebiten-outrun/render"
	"ebiten-outrun/systems"
)

// GameScreen runs one simulation frame per ebiten tick and draws the latest
// snapshot
type GameScreen struct {
	*BaseScreen
	machine      *game.StateMachine
	controls     input.Source
	renderSystem *render.RenderSystem
	messageLog   *systems.MessageLog
	last         ecs.Snapshot
	screenStack  *ScreenStack
}

// NewGameScreen creates a new game screen
func NewGameScreen(machine *game.StateMachine, controls input.Source, renderSystem *render.RenderSystem, messageLog *systems.MessageLog) *GameScreen {
	return &GameScreen{
		BaseScreen:   NewBaseScreen(),
		machine:      machine,
		controls:     controls,
		renderSystem: renderSystem,
		messageLog:   messageLog,
		last:         machine.World().Snapshot(),
		screenStack:  NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Toggle the message log with F1
	if s.screenStack.Peek() == nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.screenStack.Push(NewDebugScreen(s.messageLog))
		return nil
	}

	// The simulation is frozen while an overlay is open
	if s.screenStack.Peek() != nil {
		if err := s.screenStack.Update(); errors.Is(err, ErrCloseScreen) {
			s.screenStack.Pop()
		}
		return nil
	}

	if s.controls.IsPressed(input.Quit) {
		return ebiten.Termination
	}

	s.last = s.machine.Step(input.Sample(s.controls))
	return nil
}

// Draw draws the last snapshot and any open overlay
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.last, screen)

	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}

// Layout implements the Screen interface
func (s *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
