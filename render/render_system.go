package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

// RenderSystem draws frame snapshots. It never reads the live world.
type RenderSystem struct {
	sprites *Sprites
	face    text.Face
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(sprites *Sprites) *RenderSystem {
	return &RenderSystem{
		sprites: sprites,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders background, road, trees, boosts, traffic, player, then score
func (s *RenderSystem) Draw(snap ecs.Snapshot, screen *ebiten.Image) {
	screen.Fill(grassColor)
	s.drawAt(screen, s.sprites.Background, 0, 0)
	s.drawAt(screen, s.sprites.Road, config.RoadLeft, 0)

	for _, tree := range snap.Trees {
		s.drawAt(screen, s.sprites.Tree, tree.X, tree.Y)
	}
	for _, boost := range snap.Boosts {
		s.drawAt(screen, s.sprites.Boost, boost.X, boost.Y)
	}
	for _, car := range snap.Traffic {
		s.drawAt(screen, s.sprites.Traffic, car.X, car.Y)
	}
	s.drawAt(screen, s.sprites.Player, float64(snap.PlayerX), float64(snap.PlayerY))

	s.drawScore(screen, snap.Score)
}

func (s *RenderSystem) drawAt(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawScore prints the score overlay at the top-left corner, scaled up from
// the 7x13 bitmap face
func (s *RenderSystem) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), s.face, op)
}
