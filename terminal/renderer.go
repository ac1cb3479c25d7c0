package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ebiten-outrun/config"
	"ebiten-outrun/ecs"
)

var (
	grassStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	roadStyle    = tcell.StyleDefault.Background(tcell.ColorDimGray)
	treeStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Background(tcell.ColorGreen)
	boostStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDimGray)
	trafficStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDimGray)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorDimGray)
	scoreStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

// Glyphs for each drawable
const (
	TreeGlyph    = '♣'
	BoostGlyph   = '*'
	TrafficGlyph = '█'
	PlayerGlyph  = '▲'
)

// Renderer draws snapshots onto a tcell screen, scaling the 800x600 play
// field to whatever cell grid the terminal has
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render implements game.Renderer. Draw order matches the window front-end:
// background, road, trees, boosts, traffic, player, score.
func (r *Renderer) Render(snap ecs.Snapshot) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	r.fill(0, 0, config.ScreenWidth, config.ScreenHeight, ' ', grassStyle)
	r.fill(config.RoadLeft, 0, config.RoadWidth, config.ScreenHeight, ' ', roadStyle)

	for _, tree := range snap.Trees {
		r.fill(tree.X, tree.Y, config.TreeSize, config.TreeSize, TreeGlyph, treeStyle)
	}
	for _, boost := range snap.Boosts {
		r.fill(boost.X, boost.Y, config.BoostSize, config.BoostSize, BoostGlyph, boostStyle)
	}
	for _, car := range snap.Traffic {
		r.fill(car.X, car.Y, config.TrafficWidth, config.TrafficHeight, TrafficGlyph, trafficStyle)
	}
	r.fill(float64(snap.PlayerX), float64(snap.PlayerY), config.PlayerWidth, config.PlayerHeight, PlayerGlyph, playerStyle)

	for i, ch := range fmt.Sprintf("Score: %d", snap.Score) {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, scoreStyle)
	}

	r.screen.Show()
}

// cell maps a play-field pixel to a terminal cell
func (r *Renderer) cell(x, y float64) (col, row int) {
	cols, rows := r.screen.Size()
	col = int(x * float64(cols) / config.ScreenWidth)
	row = int(y * float64(rows) / config.ScreenHeight)
	return col, row
}

// fill paints the cells covered by a pixel rectangle, clipped to the screen.
// Every sprite covers at least one cell so small objects stay visible.
func (r *Renderer) fill(x, y float64, w, h int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	c0, r0 := r.cell(x, y)
	c1, r1 := r.cell(x+float64(w), y+float64(h))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	for row := max(r0, 0); row < min(r1, rows); row++ {
		for col := max(c0, 0); col < min(c1, cols); col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}
