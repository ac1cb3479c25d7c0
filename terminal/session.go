package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"ebiten-outrun/game"
)

// Run plays machine on screen until Quit or ctx is cancelled. It finalizes
// the screen before returning. The frame loop runs on one goroutine; a second
// goroutine only pumps tcell events into the held-key table.
func Run(ctx context.Context, screen tcell.Screen, machine *game.StateMachine) error {
	in := NewInput(DefaultHold)
	renderer := NewRenderer(screen)
	pacer := game.NewTickerPacer()
	defer pacer.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			in.HandleEvent(ev)
		}
	})

	g.Go(func() error {
		// Finalizing the screen unblocks PollEvent above.
		defer screen.Fini()
		return game.Run(ctx, machine, in, pacer, renderer)
	})

	return g.Wait()
}
