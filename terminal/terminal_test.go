package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
	"ebiten-outrun/input"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestInput() (*Input, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	in := NewInput(DefaultHold)
	in.now = clock.now
	return in, clock
}

func TestInputHoldWindow(t *testing.T) {
	in, clock := newTestInput()
	if in.IsPressed(input.Accelerate) {
		t.Fatal("accelerate held before any key event")
	}

	in.press(input.Accelerate)
	if !in.IsPressed(input.Accelerate) {
		t.Fatal("accelerate not held right after the key event")
	}

	clock.t = clock.t.Add(DefaultHold)
	if !in.IsPressed(input.Accelerate) {
		t.Fatal("accelerate released at the end of the hold window")
	}

	clock.t = clock.t.Add(time.Millisecond)
	if in.IsPressed(input.Accelerate) {
		t.Fatal("accelerate still held after the hold window")
	}
}

func TestInputOppositeSteeringClears(t *testing.T) {
	in, _ := newTestInput()

	in.press(input.SteerLeft)
	in.press(input.Accelerate)
	in.press(input.SteerRight)

	if in.IsPressed(input.SteerLeft) {
		t.Error("left still held after right")
	}
	if !in.IsPressed(input.SteerRight) || !in.IsPressed(input.Accelerate) {
		t.Error("right or accelerate lost")
	}
}

func TestInputQuitLatches(t *testing.T) {
	in, clock := newTestInput()
	in.press(input.Quit)

	clock.t = clock.t.Add(time.Hour)
	if !in.IsPressed(input.Quit) {
		t.Fatal("quit did not latch")
	}
}

func TestInputIgnoresOtherEvents(t *testing.T) {
	in, _ := newTestInput()
	in.HandleEvent(tcell.NewEventResize(80, 24))

	for _, c := range []input.Control{input.Accelerate, input.SteerLeft, input.SteerRight, input.Quit} {
		if in.IsPressed(c) {
			t.Errorf("%v held after a resize event", c)
		}
	}
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	ch, _, _, _ := screen.GetContent(col, row)
	return ch
}

func TestRendererPlacesSprites(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.Render(ecs.Snapshot{
		PlayerX: config.PlayerStartX,
		PlayerY: config.PlayerY,
		Trees:   []ecs.Entity{{Kind: ecs.KindTree, X: 120, Y: 100}},
		Boosts:  []ecs.Entity{{Kind: ecs.KindBoost, X: 220, Y: 100}},
		Traffic: []ecs.Entity{{Kind: ecs.KindTraffic, X: 476, Y: 300}},
		Score:   42,
	})

	tests := []struct {
		name     string
		col, row int
		want     rune
	}{
		{"player top left", 37, 19, PlayerGlyph},
		{"player bottom right", 41, 21, PlayerGlyph},
		{"tree", 12, 4, TreeGlyph},
		{"boost", 22, 4, BoostGlyph},
		{"traffic", 47, 12, TrafficGlyph},
		{"grass", 2, 23, ' '},
		{"road", 25, 10, ' '},
		{"score", 7, 0, '4'},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.col, tt.row); got != tt.want {
			t.Errorf("%s: cell (%d,%d) = %q, want %q", tt.name, tt.col, tt.row, got, tt.want)
		}
	}
}

func TestRendererClipsOffscreenSprites(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)

	// A freshly spawned car is entirely above the screen.
	r.Render(ecs.Snapshot{
		PlayerX: config.PlayerStartX,
		PlayerY: config.PlayerY,
		Traffic: []ecs.Entity{{Kind: ecs.KindTraffic, X: 210, Y: config.SpawnY}},
	})

	for col := 0; col < 80; col++ {
		if runeAt(screen, col, 0) == TrafficGlyph {
			t.Fatalf("off-screen car drawn at column %d", col)
		}
	}
}
