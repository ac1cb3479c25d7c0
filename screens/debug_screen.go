package screens

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"ebiten-outrun/systems"
)

// ErrCloseScreen is returned when the screen should be closed
var ErrCloseScreen = errors.New("close screen")

// DebugScreen shows the game message log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
	face         text.Face
}

// NewDebugScreen creates a new debug screen over log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		log:          log,
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 220},
		textColor:    color.White,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	// ESC or F1 closes the window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the debug screen centred over whatever is below it
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2
	w, h := float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, x, y, w, h, s.background, false)
	vector.StrokeRect(screen, x, y, w, h, 2, s.textColor, false)

	s.drawLine(screen, "MESSAGE LOG", x+10, y+8, s.textColor)

	messages := s.log.Messages
	startY := y + 30
	lineHeight := float32(16)
	maxLines := int((h - 60) / lineHeight)

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		s.drawLine(screen, msg.Text, x+10, startY+float32(i)*lineHeight, msg.GetColor())
	}

	s.drawLine(screen, "Up/Down: Scroll  ESC: Close", x+10, y+h-22, s.textColor)
}

func (s *DebugScreen) drawLine(screen *ebiten.Image, line string, x, y float32, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, line, s.face, op)
}

// Layout implements the Screen interface
func (s *DebugScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
