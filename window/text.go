package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces the renderer draws with.
type Fonts struct {
	Large *text.GoTextFace // the decorative secret
	Digit *text.GoTextFace // digit slots
	Small *text.GoTextFace // place value hints
}

// LoadFonts parses Go Regular at the sizes the layout uses. A failure here is
// fatal to the caller: the game never runs without its text.
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to parse font: %w", err)
	}
	return &Fonts{
		Large: &text.GoTextFace{Source: source, Size: 96},
		Digit: &text.GoTextFace{Source: source, Size: 36},
		Small: &text.GoTextFace{Source: source, Size: 14},
	}, nil
}

// drawCentered draws s horizontally centered on x with its top at y.
func drawCentered(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
