package mrbinaer

import "math"

// HatAnchors are the two points the hat rests on, in model units. Their X
// values stay fixed; only the heights move. The state machine never sees them.
// They belong to the Stage that draws the figure.
type HatAnchors struct {
	Left, Right Vec2
}

// NewHatAnchors places both anchors at the given X values, resting on s.
func NewHatAnchors(leftX, rightX float64, s Silhouette) HatAnchors {
	a := HatAnchors{Left: Vec2{X: leftX}, Right: Vec2{X: rightX}}
	if h, ok := SupportHeight(leftX, s); ok {
		a.Left.Y = h
	}
	if h, ok := SupportHeight(rightX, s); ok {
		a.Right.Y = h
	}
	return a
}

// SupportHeight returns the highest point of s directly at x. It considers
// exact vertex matches and every consecutive edge whose endpoints straddle x,
// interpolating along the edge. ok is false when nothing in s covers x.
func SupportHeight(x float64, s Silhouette) (height float64, ok bool) {
	height = math.Inf(-1)
	for i, p := range s {
		if p.X == x {
			height = math.Max(height, p.Y)
			ok = true
		}
		if i == 0 {
			continue
		}
		a, b := s[i-1], p
		if a.X == b.X {
			continue // vertical edge: its endpoints are covered by the vertex check
		}
		if (a.X < x && x < b.X) || (b.X < x && x < a.X) {
			t := (x - a.X) / (b.X - a.X)
			height = math.Max(height, a.Y+(b.Y-a.Y)*t)
			ok = true
		}
	}
	if !ok {
		return 0, false
	}
	return height, true
}

// StepAnchor advances one anchor by one frame. If the silhouette's support
// at the anchor is within epsilon of the anchor's height or above it, the
// anchor snaps onto it. Otherwise the anchor falls by fall, without dropping
// below the support. With no support at all the height stays as it is.
func StepAnchor(a Vec2, s Silhouette, epsilon, fall float64) Vec2 {
	h, ok := SupportHeight(a.X, s)
	if !ok {
		return a
	}
	if h >= a.Y-epsilon {
		a.Y = h
		return a
	}
	a.Y = math.Max(a.Y-fall, h)
	return a
}

// Step advances both anchors independently against s.
func (h HatAnchors) Step(s Silhouette, epsilon, fall float64) HatAnchors {
	return HatAnchors{
		Left:  StepAnchor(h.Left, s, epsilon, fall),
		Right: StepAnchor(h.Right, s, epsilon, fall),
	}
}

// Slope returns the rise over run between the anchors. Coincident X values
// report a flat hat.
func (h HatAnchors) Slope() float64 {
	dx := h.Right.X - h.Left.X
	if dx == 0 {
		return 0
	}
	return (h.Right.Y - h.Left.Y) / dx
}

// Lerp blends h toward o by t, used while the hat travels between head and hand.
func (h HatAnchors) Lerp(o HatAnchors, t float64) HatAnchors {
	return HatAnchors{
		Left:  h.Left.Add(o.Left.Sub(h.Left).Mul(t)),
		Right: h.Right.Add(o.Right.Sub(h.Right).Mul(t)),
	}
}

// Strip returns the hat outline as a line strip resting on the anchors: a
// brim reaching brim units past each anchor and a crown of height crown,
// both tilted with the anchors.
func (h HatAnchors) Strip(brim, crown float64) []Vec2 {
	d := h.Right.Sub(h.Left)
	ln := math.Hypot(d.X, d.Y)
	if ln < 1e-9 {
		d = Vec2{1, 0}
	} else {
		d = d.Mul(1 / ln)
	}
	n := Vec2{-d.Y, d.X}
	return []Vec2{
		h.Left.Sub(d.Mul(brim)),
		h.Right.Add(d.Mul(brim)),
		h.Right,
		h.Right.Add(n.Mul(crown)),
		h.Left.Add(n.Mul(crown)),
		h.Left,
	}
}
