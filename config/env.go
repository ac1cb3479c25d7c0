package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read at startup
const (
	EnvTuning = "OUTRUN_TUNING" // path to a .json/.yaml tuning file
	EnvSeed   = "OUTRUN_SEED"   // uint64 spawn seed
	EnvAssets = "OUTRUN_ASSETS" // sprite directory
	EnvLog    = "OUTRUN_LOG"    // log file for the terminal front-end
)

// Seed returns the spawn seed from OUTRUN_SEED, or a clock-derived seed when
// the variable is unset
func Seed() (uint64, error) {
	s := os.Getenv(EnvSeed)
	if s == "" {
		return uint64(time.Now().UnixNano()), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvSeed, err)
	}
	return v, nil
}

// TuningPath returns the tuning file path, empty when defaults should be used
func TuningPath() string {
	return os.Getenv(EnvTuning)
}

// AssetsDir returns the sprite directory, empty for flat-colour sprites
func AssetsDir() string {
	return os.Getenv(EnvAssets)
}

// LogPath returns the terminal front-end's log file, empty to discard logs
func LogPath() string {
	return os.Getenv(EnvLog)
}
