package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mrbinaer"
)

// whitePixel is the 1x1 source image for solid-color triangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()

// Ribbon builds a triangle ribbon of the given width along a line strip:
// two vertices per point and two triangles per segment. Interior joins use
// the averaged normal, extended to keep the width at the corner but clamped
// at twice the half width so sharp turns do not spike.
func Ribbon(points []mrbinaer.Vec2, width float64, clr color.Color, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	vs, is = vs[:0], is[:0]
	n := len(points)
	if n < 2 {
		return vs, is
	}

	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff
	halfW := width / 2

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(points[0], points[1])
		case n - 1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Hypot(nx, ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			} else {
				nx, ny = nx0, ny0 // the strip folds back on itself
			}
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := math.Min(1/dot, 2)
				nx *= scale
				ny *= scale
			}
		}
		p := points[i]
		vs = append(vs,
			ebiten.Vertex{DstX: float32(p.X + nx*halfW), DstY: float32(p.Y + ny*halfW), ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
			ebiten.Vertex{DstX: float32(p.X - nx*halfW), DstY: float32(p.Y - ny*halfW), ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		)
	}

	for i := 0; i < n-1; i++ {
		v := uint16(i * 2)
		is = append(is, v, v+1, v+2, v+1, v+3, v+2)
	}
	return vs, is
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
// Degenerate segments, like the doubled point the figure starts on, report
// straight up.
func perpendicular(a, b mrbinaer.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
