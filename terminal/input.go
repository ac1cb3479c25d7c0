package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-outrun/input"
)

// DefaultHold is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const DefaultHold = 200 * time.Millisecond

// Input turns tcell key events into held control state. HandleEvent runs on
// the event goroutine; IsPressed runs on the frame loop.
type Input struct {
	mu       sync.Mutex
	lastSeen map[input.Control]time.Time
	quit     bool

	hold time.Duration
	now  func() time.Time
}

// NewInput creates an input source that holds each key for hold
func NewInput(hold time.Duration) *Input {
	return &Input{
		lastSeen: make(map[input.Control]time.Time),
		hold:     hold,
		now:      time.Now,
	}
}

// HandleEvent records a key event. Non-key events are ignored.
func (in *Input) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	control, ok := controlFor(key)
	if !ok {
		return
	}

	in.press(control)
}

// press records control as seen now
func (in *Input) press(control input.Control) {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch control {
	case input.Quit:
		in.quit = true
	case input.SteerLeft:
		// Opposite directions can't both be held; the newest wins.
		delete(in.lastSeen, input.SteerRight)
		in.lastSeen[control] = in.now()
	case input.SteerRight:
		delete(in.lastSeen, input.SteerLeft)
		in.lastSeen[control] = in.now()
	default:
		in.lastSeen[control] = in.now()
	}
}

// IsPressed implements input.Source. Quit latches once seen.
func (in *Input) IsPressed(c input.Control) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if c == input.Quit {
		return in.quit
	}
	seen, ok := in.lastSeen[c]
	return ok && in.now().Sub(seen) <= in.hold
}

func controlFor(ev *tcell.EventKey) (input.Control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Accelerate, true
	case tcell.KeyLeft:
		return input.SteerLeft, true
	case tcell.KeyRight:
		return input.SteerRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.Accelerate, true
		case 'a', 'A':
			return input.SteerLeft, true
		case 'd', 'D':
			return input.SteerRight, true
		case 'q', 'Q':
			return input.Quit, true
		}
	}
	return 0, false
}
