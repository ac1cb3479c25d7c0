package systems

import (
	"testing"

	"ebiten-outrun/components"
	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

func newTestWorld(speed float64) *ecs.World {
	w := ecs.NewWorld()
	w.Player = components.NewPlayerComponent(speed)
	w.Run = components.NewRunComponent()
	return w
}

func TestMovementAdvance(t *testing.T) {
	w := newTestWorld(5.5)
	w.Entities.Add(ecs.KindTraffic, 210, -100, 6)
	w.Entities.Add(ecs.KindTree, 120, 0, 0)
	w.Entities.Add(ecs.KindBoost, 220, 10, 0)

	NewMovementSystem().Update(w, 0)

	if got := w.Entities.View(ecs.KindTraffic)[0].Y; got != -94 {
		t.Errorf("traffic y = %v, want -94", got)
	}
	if got := w.Entities.View(ecs.KindTree)[0].Y; got != 5.5 {
		t.Errorf("tree y = %v, want 5.5", got)
	}
	if got := w.Entities.View(ecs.KindBoost)[0].Y; got != 15.5 {
		t.Errorf("boost y = %v, want 15.5", got)
	}
}

func TestMovementCullBoundary(t *testing.T) {
	w := newTestWorld(5)
	w.Entities.Add(ecs.KindTree, 120, 594, 0)    // reaches 599
	w.Entities.Add(ecs.KindTree, 600, 595, 0)    // reaches 600
	w.Entities.Add(ecs.KindTraffic, 210, 590, 4) // reaches 594
	w.Entities.Add(ecs.KindTraffic, 343, 592, 8) // reaches 600

	var culled []CullEvent
	w.GetEventManager().Subscribe(EventCull, func(e ecs.Event) {
		culled = append(culled, e.(CullEvent))
	})

	NewMovementSystem().Update(w, 0)

	if w.Entities.Len(ecs.KindTree) != 1 || w.Entities.View(ecs.KindTree)[0].Y != 599 {
		t.Errorf("trees = %+v", w.Entities.View(ecs.KindTree))
	}
	if w.Entities.Len(ecs.KindTraffic) != 1 || w.Entities.View(ecs.KindTraffic)[0].Y != 594 {
		t.Errorf("traffic = %+v", w.Entities.View(ecs.KindTraffic))
	}
	if len(culled) != 2 {
		t.Fatalf("cull events = %+v", culled)
	}
}

func TestMovementIsStrictlyDownward(t *testing.T) {
	w := newTestWorld(5)
	for i := 0; i < 3; i++ {
		w.Entities.Add(ecs.KindTraffic, 210, float64(-100+i*50), 4+i)
		w.Entities.Add(ecs.KindBoost, 220, float64(-100+i*50), 0)
	}
	m := NewMovementSystem()

	for frame := 0; frame < 200; frame++ {
		before := map[ecs.EntityID]float64{}
		for _, kind := range ecs.Kinds {
			for _, e := range w.Entities.View(kind) {
				before[e.ID] = e.Y
			}
		}
		m.Update(w, 0)
		for _, kind := range ecs.Kinds {
			for _, e := range w.Entities.View(kind) {
				if e.Y <= before[e.ID] {
					t.Fatalf("frame %d: entity %d went from %v to %v", frame, e.ID, before[e.ID], e.Y)
				}
				if e.Y >= config.ScreenHeight {
					t.Fatalf("frame %d: entity %d survived at %v", frame, e.ID, e.Y)
				}
			}
		}
	}
	if w.Entities.Total() != 0 {
		t.Fatalf("%d entities never left the screen", w.Entities.Total())
	}
}

func TestPlayerSpeed(t *testing.T) {
	tests := []struct {
		name       string
		speed      float64
		accelerate bool
		want       float64
	}{
		{"accelerates", 5, true, 5.2},
		{"caps at max", 11.9, true, 12},
		{"boosted drops to max while accelerating", 15, true, 12},
		{"coasts down", 8, false, 7.9},
		{"never below base", 5.05, false, 5},
		{"boosted decays slowly", 17, false, 16.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(tt.speed)
			w.Controls.Accelerate = tt.accelerate
			NewPlayerSystem(config.DefaultTuning()).Update(w, 0)
			if diff := w.Player.Speed - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("speed = %v, want %v", w.Player.Speed, tt.want)
			}
		})
	}
}

func TestPlayerSteering(t *testing.T) {
	tests := []struct {
		name        string
		x           int
		left, right bool
		want        int
	}{
		{"left", 375, true, false, 368},
		{"right", 375, false, true, 382},
		{"both cancel", 375, true, true, 375},
		{"stops on left edge", 207, true, false, 200},
		{"at left edge", 200, true, false, 200},
		{"skips step that would cross left edge", 203, true, false, 203},
		{"stops on right edge", 543, false, true, 550},
		{"at right edge", 550, false, true, 550},
		{"skips step that would cross right edge", 547, false, true, 547},
		{"right still works from left edge", 200, false, true, 207},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(5)
			w.Player.X = tt.x
			w.Controls.SteerLeft = tt.left
			w.Controls.SteerRight = tt.right
			NewPlayerSystem(config.DefaultTuning()).Update(w, 0)
			if w.Player.X != tt.want {
				t.Errorf("x = %d, want %d", w.Player.X, tt.want)
			}
			if w.Player.Y != config.PlayerY {
				t.Errorf("y changed to %d", w.Player.Y)
			}
		})
	}
}

func TestCrashThresholds(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"overlapping", 10, 5, true},
		{"just inside", 39, 79, true},
		{"behind", -39, -79, true},
		{"x on threshold", 40, 0, false},
		{"y on threshold", 0, 80, false},
		{"far", 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(5)
			w.Player.X = 400
			w.Entities.Add(ecs.KindTraffic, 400+tt.dx, 480+tt.dy, 4)

			crashed := false
			w.GetEventManager().Subscribe(EventCrash, func(ecs.Event) { crashed = true })
			NewCollisionSystem(config.DefaultTuning()).Update(w, 0)

			if crashed != tt.want || w.Halted() != tt.want {
				t.Errorf("crashed = %v, halted = %v, want %v", crashed, w.Halted(), tt.want)
			}
		})
	}
}

func TestCrashReportsFirstCar(t *testing.T) {
	w := newTestWorld(5)
	w.Player.X = 400
	first := w.Entities.Add(ecs.KindTraffic, 410, 485, 4)
	w.Entities.Add(ecs.KindTraffic, 400, 480, 4)
	w.Run.Score = 33

	var got CrashEvent
	w.GetEventManager().Subscribe(EventCrash, func(e ecs.Event) { got = e.(CrashEvent) })
	NewCollisionSystem(config.DefaultTuning()).Update(w, 0)

	if got.Car.ID != first.ID || got.Score != 33 || got.PlayerX != 400 {
		t.Fatalf("crash event = %+v", got)
	}
}

func TestCollectBoosts(t *testing.T) {
	w := newTestWorld(5)
	w.Player.X = 400
	a := w.Entities.Add(ecs.KindBoost, 405, 490, 0)
	w.Entities.Add(ecs.KindBoost, 430, 480, 0) // x on threshold
	b := w.Entities.Add(ecs.KindBoost, 380, 440, 0)

	var pickups []PickupEvent
	w.GetEventManager().Subscribe(EventPickup, func(e ecs.Event) { pickups = append(pickups, e.(PickupEvent)) })
	NewCollisionSystem(config.DefaultTuning()).Update(w, 0)

	if w.Player.Speed != 11 {
		t.Errorf("speed = %v, want 11", w.Player.Speed)
	}
	if w.Entities.Len(ecs.KindBoost) != 1 || w.Entities.View(ecs.KindBoost)[0].X != 430 {
		t.Errorf("boosts left = %+v", w.Entities.View(ecs.KindBoost))
	}
	if len(pickups) != 2 || pickups[0].Boost.ID != a.ID || pickups[1].Boost.ID != b.ID {
		t.Fatalf("pickups = %+v", pickups)
	}
	if pickups[0].OldSpeed != 5 || pickups[0].NewSpeed != 8 {
		t.Errorf("first pickup = %+v", pickups[0])
	}
}

func TestBoostCeiling(t *testing.T) {
	w := newTestWorld(16)
	w.Entities.Add(ecs.KindBoost, config.PlayerStartX, config.PlayerY, 0)
	NewCollisionSystem(config.DefaultTuning()).Update(w, 0)
	if w.Player.Speed != 17 {
		t.Fatalf("speed = %v, want 17", w.Player.Speed)
	}
}

func TestNoPickupOnCrashFrame(t *testing.T) {
	w := newTestWorld(5)
	w.Entities.Add(ecs.KindTraffic, config.PlayerStartX, config.PlayerY, 4)
	w.Entities.Add(ecs.KindBoost, config.PlayerStartX, config.PlayerY, 0)

	NewCollisionSystem(config.DefaultTuning()).Update(w, 0)

	if w.Player.Speed != 5 || w.Entities.Len(ecs.KindBoost) != 1 {
		t.Fatalf("boost consumed on a crash frame: speed %v", w.Player.Speed)
	}
}

func TestScore(t *testing.T) {
	w := newTestWorld(5)
	s := NewScoreSystem()
	for i := 1; i <= 10; i++ {
		s.Update(w, 0)
		if w.Run.Score != i {
			t.Fatalf("score after %d frames = %d", i, w.Run.Score)
		}
	}
}

func TestMessageLog(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}

	recent := ml.RecentMessages(10)
	if len(recent) != 3 || recent[0].Text != "d" || recent[2].Text != "b" {
		t.Fatalf("recent = %+v", recent)
	}

	ml.Clear()
	if len(ml.RecentMessages(1)) != 0 {
		t.Fatal("Clear left messages behind")
	}
}

func TestMessageLogAttach(t *testing.T) {
	ml := NewMessageLog()
	em := ecs.NewEventManager()
	ml.Attach(em)

	em.Emit(PickupEvent{OldSpeed: 5, NewSpeed: 8})
	em.Emit(CrashEvent{Car: ecs.Entity{ID: 4}, Score: 120})
	em.Emit(ResetEvent{PreviousScore: 120})
	em.Emit(CullEvent{Kind: ecs.KindTree, Count: 1})

	want := []struct {
		text string
		typ  MessageType
	}{
		{"Boost! 5.0 -> 8.0", MessageTypePickup},
		{"Crashed into car #4 at score 120", MessageTypeCrash},
		{"Restarted (last score 120)", MessageTypeCrash},
	}
	if len(ml.Messages) != len(want) {
		t.Fatalf("messages = %+v", ml.Messages)
	}
	for i, w := range want {
		if ml.Messages[i].Text != w.text || ml.Messages[i].Type != w.typ {
			t.Errorf("message %d = %+v, want %q", i, ml.Messages[i], w.text)
		}
	}
}
