package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mrbinaer"
)

var (
	colorBackground = color.White
	colorSecret     = color.RGBA{R: 225, G: 225, B: 235, A: 255}
	colorOutline    = color.Black
	colorOpenDigit  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorDigit      = color.RGBA{R: 20, G: 110, B: 40, A: 255}
	colorHint       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

const (
	lineWidth   = 2.0
	slotSpacing = 48.0
	slotTop     = 470.0
	hintOffset  = 44.0
)

// Renderer draws composed frames onto the screen image.
type Renderer struct {
	fonts  *Fonts
	width  float64
	height float64

	vs []ebiten.Vertex
	is []uint16
}

// NewRenderer creates a renderer for a screen of the given size.
func NewRenderer(fonts *Fonts, width, height int) *Renderer {
	return &Renderer{fonts: fonts, width: float64(width), height: float64(height)}
}

// Draw clears screen and draws f: the secret as a backdrop, the digit slots
// with their place values, then the figure and the hat.
func (r *Renderer) Draw(screen *ebiten.Image, f mrbinaer.Frame) {
	screen.Fill(colorBackground)

	drawCentered(screen, f.Secret, r.fonts.Large, r.width/2, 20, colorSecret)

	left := r.width/2 - slotSpacing*float64(len(f.Digits)-1)/2
	for i, d := range f.Digits {
		x := left + float64(i)*slotSpacing
		clr := colorOpenDigit
		if d.Confirmed {
			clr = colorDigit
		}
		drawCentered(screen, d.Text, r.fonts.Digit, x, slotTop, clr)
		drawCentered(screen, d.Hint, r.fonts.Small, x, slotTop+hintOffset, colorHint)
	}

	r.strip(screen, f.Figure)
	r.strip(screen, f.Hat)
}

func (r *Renderer) strip(screen *ebiten.Image, points []mrbinaer.Vec2) {
	r.vs, r.is = Ribbon(points, lineWidth, colorOutline, r.vs, r.is)
	if len(r.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vs, r.is, whitePixel, op)
}
