package game

import (
	"fmt"
	"log/slog"

	"ebiten-outrun/config"
	"ebiten-outrun/data"
	"ebiten-outrun/spawners"
)

// NewFromEnv builds a state machine from the OUTRUN_* environment: tuning
// file (defaults when unset) and spawn seed (clock when unset)
func NewFromEnv(logger *slog.Logger, opts ...Option) (*StateMachine, error) {
	tuning := config.DefaultTuning()
	path := config.TuningPath()
	if path != "" {
		loaded, err := data.LoadTuning(path)
		if err != nil {
			return nil, err
		}
		tuning = loaded
	}

	seed, err := config.Seed()
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	logger.Info("configured", "component", "bootstrap", "seed", seed, "tuning", path, "fps", tuning.FPS)

	opts = append([]Option{WithLogger(logger)}, opts...)
	return NewStateMachine(tuning, spawners.NewRand(seed), opts...), nil
}
