package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-outrun/config"
)

// Sprite file names looked up in an asset directory
const (
	PlayerSpriteFile     = "car.png"
	TrafficSpriteFile    = "traffic_car.png"
	BackgroundSpriteFile = "background.png"
	RoadSpriteFile       = "road.png"
	TreeSpriteFile       = "side_trees.png"
	BoostSpriteFile      = "speed_boost.png"
)

// Sprites holds one image per drawable, already scaled to its on-screen size
type Sprites struct {
	Background *ebiten.Image
	Road       *ebiten.Image
	Tree       *ebiten.Image
	Boost      *ebiten.Image
	Traffic    *ebiten.Image
	Player     *ebiten.Image
}

// Flat colours used when no asset directory is configured
var (
	grassColor   = color.RGBA{0, 200, 0, 255}
	roadColor    = color.RGBA{60, 60, 60, 255}
	stripeColor  = color.RGBA{255, 255, 255, 255}
	treeColor    = color.RGBA{0, 110, 30, 255}
	boostColor   = color.RGBA{255, 255, 0, 255}
	trafficColor = color.RGBA{200, 0, 0, 255}
	playerColor  = color.RGBA{30, 90, 220, 255}
)

// NewFlatSprites builds plain coloured sprites of the right sizes
func NewFlatSprites() *Sprites {
	road := ebiten.NewImage(config.RoadWidth, config.ScreenHeight)
	road.Fill(roadColor)
	// Dashed lane dividers
	for lane := 1; lane < config.LaneCount; lane++ {
		x := float32(lane * config.LaneWidth)
		for y := 0; y < config.ScreenHeight; y += 40 {
			vector.DrawFilledRect(road, x-2, float32(y), 4, 20, stripeColor, false)
		}
	}

	return &Sprites{
		Background: filled(config.ScreenWidth, config.ScreenHeight, grassColor),
		Road:       road,
		Tree:       filled(config.TreeSize, config.TreeSize, treeColor),
		Boost:      filled(config.BoostSize, config.BoostSize, boostColor),
		Traffic:    filled(config.TrafficWidth, config.TrafficHeight, trafficColor),
		Player:     filled(config.PlayerWidth, config.PlayerHeight, playerColor),
	}
}

// LoadSprites loads every sprite from dir, failing on the first missing or
// undecodable file
func LoadSprites(dir string) (*Sprites, error) {
	sprites := &Sprites{}
	specs := []struct {
		dst  **ebiten.Image
		file string
		w, h int
	}{
		{&sprites.Background, BackgroundSpriteFile, config.ScreenWidth, config.ScreenHeight},
		{&sprites.Road, RoadSpriteFile, config.RoadWidth, config.ScreenHeight},
		{&sprites.Tree, TreeSpriteFile, config.TreeSize, config.TreeSize},
		{&sprites.Boost, BoostSpriteFile, config.BoostSize, config.BoostSize},
		{&sprites.Traffic, TrafficSpriteFile, config.TrafficWidth, config.TrafficHeight},
		{&sprites.Player, PlayerSpriteFile, config.PlayerWidth, config.PlayerHeight},
	}

	for _, spec := range specs {
		img, err := loadScaled(filepath.Join(dir, spec.file), spec.w, spec.h)
		if err != nil {
			return nil, fmt.Errorf("load sprite %s: %w", spec.file, err)
		}
		*spec.dst = img
	}
	return sprites, nil
}

// loadScaled decodes an image file and scales it to w x h
func loadScaled(path string, w, h int) (*ebiten.Image, error) {
	// Open the file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	src := ebiten.NewImageFromImage(img)
	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst, nil
}

func filled(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}
