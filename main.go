package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-outrun/config"
	"ebiten-outrun/game"
	"ebiten-outrun/render"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	machine, err := game.NewFromEnv(logger)
	if err != nil {
		log.Fatal(err)
	}

	// Sprites must be complete before the loop starts
	sprites := render.NewFlatSprites()
	if dir := config.AssetsDir(); dir != "" {
		sprites, err = render.LoadSprites(dir)
		if err != nil {
			logger.Error("sprite loading failed", "dir", dir, "err", err)
			log.Fatal(err)
		}
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(machine.Tuning().FPS)

	if err := ebiten.RunGame(NewGame(machine, sprites)); err != nil {
		log.Fatal(err)
	}
}
