package mrbinaer

import (
	"fmt"
	"math"
)

// GetSilhouette returns a copy of the named rest silhouette. Callers own the
// result and may mutate it freely.
func GetSilhouette(name ShapeName) (Silhouette, error) {
	s, ok := restShapes[name]
	if !ok {
		return nil, fmt.Errorf("get %v: %w", name, ErrUnknownShape)
	}
	return s.Clone(), nil
}

// mustSilhouette is GetSilhouette for the built-in shapes, which always exist.
func mustSilhouette(name ShapeName) Silhouette {
	s, err := GetSilhouette(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Interpolate linearly blends src toward dst index by index:
// result[i] = src[i] + (dst[i]-src[i])*t.
//
// t is not clamped. Values outside [0, 1] extrapolate, which the overshooting
// scale easing depends on. t == 0 and t == 1 return exact copies of src and
// dst respectively.
func Interpolate(src, dst Silhouette, t float64) (Silhouette, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("interpolate %d and %d points: %w", len(src), len(dst), ErrLengthMismatch)
	}
	switch t {
	case 0:
		return src.Clone(), nil
	case 1:
		return dst.Clone(), nil
	}
	out := make(Silhouette, len(src))
	for i := range src {
		out[i] = Vec2{
			X: src[i].X + (dst[i].X-src[i].X)*t,
			Y: src[i].Y + (dst[i].Y-src[i].Y)*t,
		}
	}
	return out, nil
}

// Deform pushes every point of s away from avoid. Points inside radius move
// outward by up to strength model units, with a linear falloff to zero at the
// radius. t scales the whole displacement so the deformation can be animated
// in and out. A point exactly on avoid is pushed straight up.
func Deform(s Silhouette, avoid Vec2, radius, strength, t float64) Silhouette {
	out := s.Clone()
	if radius <= 0 || t == 0 {
		return out
	}
	for i, p := range out {
		d := p.Sub(avoid)
		dist := math.Hypot(d.X, d.Y)
		if dist >= radius {
			continue
		}
		dir := Vec2{0, 1}
		if dist > 1e-9 {
			dir = d.Mul(1 / dist)
		}
		push := strength * (1 - dist/radius) * t
		out[i] = p.Add(dir.Mul(push))
	}
	return out
}
