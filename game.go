package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-outrun/config"
	"ebiten-outrun/game"
	"ebiten-outrun/render"
	"ebiten-outrun/screens"
	"ebiten-outrun/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screens *screens.ScreenStack
}

// NewGame creates a new game instance around a configured state machine
func NewGame(machine *game.StateMachine, sprites *render.Sprites) *Game {
	messageLog := systems.GetMessageLog()
	messageLog.Attach(machine.World().GetEventManager())
	messageLog.AddColored("Arrow keys or WASD to drive, Q to quit, F1 for this log.", systems.MessageTypeSystem)

	stack := screens.NewScreenStack()
	stack.Push(screens.NewGameScreen(
		machine,
		screens.NewKeyboard(),
		render.NewRenderSystem(sprites),
		messageLog,
	))

	return &Game{screens: stack}
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.screens.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)

	// Print FPS for debugging
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 10, config.ScreenHeight-20)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}
