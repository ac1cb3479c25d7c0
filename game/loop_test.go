package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
	"ebiten-outrun/input"
)

// quitAfter holds Accelerate and reports Quit once it has been asked n times
type quitAfter struct {
	n     int
	asked int
}

func (q *quitAfter) IsPressed(c input.Control) bool {
	switch c {
	case input.Quit:
		q.asked++
		return q.asked > q.n
	case input.Accelerate:
		return true
	default:
		return false
	}
}

type countingPacer struct {
	ticks int
	fps   int
}

func (p *countingPacer) Tick(fps int) {
	p.ticks++
	p.fps = fps
}

func TestRunStopsOnQuit(t *testing.T) {
	m := newTestMachine(t, neverSpawn{}, nil)
	src := &quitAfter{n: 5}
	pacer := &countingPacer{}
	var frames []ecs.Snapshot

	err := Run(context.Background(), m, src, pacer, RendererFunc(func(s ecs.Snapshot) {
		frames = append(frames, s)
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != 5 || pacer.ticks != 5 || pacer.fps != config.FPS {
		t.Fatalf("rendered %d frames, %d ticks at %d fps", len(frames), pacer.ticks, pacer.fps)
	}
	last := frames[len(frames)-1]
	if last.Score != 5 || last.Speed <= 5 {
		t.Errorf("last frame = %+v", last)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m := newTestMachine(t, neverSpawn{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	rendered := 0

	err := Run(ctx, m, input.Static{}, &countingPacer{}, RendererFunc(func(ecs.Snapshot) {
		rendered++
		if rendered == 3 {
			cancel()
		}
	}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if rendered != 3 {
		t.Errorf("rendered %d frames after cancel", rendered)
	}
}

func TestTickerPacer(t *testing.T) {
	p := NewTickerPacer()
	defer p.Stop()

	p.Tick(0)

	start := time.Now()
	for i := 0; i < 3; i++ {
		p.Tick(100)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("three ticks at 100fps took %v", elapsed)
	}
}

func TestNewFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\nturn_step: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvTuning, path)
	t.Setenv(config.EnvSeed, "17")

	m, err := NewFromEnv(quietLogger())
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if m.Tuning().FPS != 30 || m.Tuning().TurnStep != 5 {
		t.Errorf("tuning = %+v", m.Tuning())
	}
}

func TestNewFromEnvErrors(t *testing.T) {
	t.Run("bad seed", func(t *testing.T) {
		t.Setenv(config.EnvTuning, "")
		t.Setenv(config.EnvSeed, "-1")
		if _, err := NewFromEnv(quietLogger()); err == nil {
			t.Fatal("NewFromEnv accepted a negative seed")
		}
	})
	t.Run("missing tuning file", func(t *testing.T) {
		t.Setenv(config.EnvTuning, filepath.Join(t.TempDir(), "nope.json"))
		t.Setenv(config.EnvSeed, "1")
		if _, err := NewFromEnv(quietLogger()); err == nil {
			t.Fatal("NewFromEnv ignored a missing tuning file")
		}
	})
}
