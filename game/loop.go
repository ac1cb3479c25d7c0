package game

import (
	"context"
	"time"

	"ebiten-outrun/ecs"
	"ebiten-outrun/input"
)

// Pacer blocks until the next frame boundary
type Pacer interface {
	Tick(fps int)
}

// Renderer receives one snapshot per frame. Render must not block on the
// display; the loop never waits for a frame to be shown.
type Renderer interface {
	Render(snap ecs.Snapshot)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(snap ecs.Snapshot)

// Render implements Renderer
func (f RendererFunc) Render(snap ecs.Snapshot) {
	f(snap)
}

// Run drives m until src reports Quit or ctx is cancelled. Quit is checked
// once per frame, before the frame runs. It returns nil on Quit and the
// context's error on cancellation.
func Run(ctx context.Context, m *StateMachine, src input.Source, pacer Pacer, r Renderer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if src.IsPressed(input.Quit) {
			return nil
		}

		snap := m.Step(input.Sample(src))
		r.Render(snap)
		pacer.Tick(m.tuning.FPS)
	}
}

// TickerPacer paces frames with a time.Ticker. Frames that overrun their
// slot are not made up.
type TickerPacer struct {
	ticker *time.Ticker
	fps    int
}

// NewTickerPacer creates a pacer; the ticker starts on the first Tick
func NewTickerPacer() *TickerPacer {
	return &TickerPacer{}
}

// Tick implements Pacer
func (p *TickerPacer) Tick(fps int) {
	if fps <= 0 {
		return
	}
	if p.ticker == nil || p.fps != fps {
		p.Stop()
		p.ticker = time.NewTicker(time.Second / time.Duration(fps))
		p.fps = fps
	}
	<-p.ticker.C
}

// Stop releases the underlying ticker
func (p *TickerPacer) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
}
