package mrbinaer

import (
	"fmt"
	"math"
)

// Silhouette is an ordered line-strip outline in model units (Y up).
//
// All rest silhouettes share the same length and the same anatomical index
// meaning: index i of the figure and index i of the tree describe the same
// part of the body. Morphing pairs points by index, so breaking this
// invariant silently tears the outline apart mid-morph.
type Silhouette []Vec2

// SilhouetteLen is the number of points in every rest silhouette.
const SilhouetteLen = 17

// ShapeName identifies a rest silhouette.
type ShapeName uint8

const (
	ShapeFigure ShapeName = iota // the snowman
	ShapeTree                    // the fir tree it becomes on a win
)

// String returns the shape's name.
func (n ShapeName) String() string {
	switch n {
	case ShapeFigure:
		return "figure"
	case ShapeTree:
		return "tree"
	}
	return fmt.Sprintf("shape(%d)", uint8(n))
}

// Index layout shared by both shapes:
//
//	0-1    neck (the strip starts on a doubled point)
//	2-9    head (figure) / upper tier (tree); 5-6 are the crown
//	10-16  body (figure) / lower tier and trunk (tree)
var restShapes = map[ShapeName]Silhouette{
	ShapeFigure: {
		{5, 8}, {5, 8},
		{3, 8}, {1, 10}, {1, 12}, {3, 14}, {5, 14}, {7, 12}, {7, 10}, {5, 8},
		{8, 5}, {8, 2}, {6, 0}, {2, 0}, {0, 2}, {0, 5}, {3, 8},
	},
	ShapeTree: {
		{5, 8}, {5, 8},
		{3, 8}, {1, 8}, {3, 11}, {4, 15}, {4, 15}, {5, 11}, {7, 8}, {5, 8},
		{8, 4}, {5, 4}, {5, 0}, {3, 0}, {3, 4}, {0, 4}, {3, 8},
	},
}

// Clone returns a copy that shares no memory with s.
func (s Silhouette) Clone() Silhouette {
	out := make(Silhouette, len(s))
	copy(out, s)
	return out
}

// Add returns s + o element-wise.
func (s Silhouette) Add(o Silhouette) (Silhouette, error) {
	if len(s) != len(o) {
		return nil, fmt.Errorf("add %d and %d points: %w", len(s), len(o), ErrLengthMismatch)
	}
	out := make(Silhouette, len(s))
	for i := range s {
		out[i] = s[i].Add(o[i])
	}
	return out, nil
}

// Sub returns s - o element-wise.
func (s Silhouette) Sub(o Silhouette) (Silhouette, error) {
	if len(s) != len(o) {
		return nil, fmt.Errorf("sub %d and %d points: %w", len(s), len(o), ErrLengthMismatch)
	}
	out := make(Silhouette, len(s))
	for i := range s {
		out[i] = s[i].Sub(o[i])
	}
	return out, nil
}

// Scale returns every point multiplied by k.
func (s Silhouette) Scale(k float64) Silhouette {
	return s.ScaleXY(k, k)
}

// ScaleXY returns every point scaled per axis around the model origin.
func (s Silhouette) ScaleXY(sx, sy float64) Silhouette {
	out := make(Silhouette, len(s))
	for i, p := range s {
		out[i] = Vec2{p.X * sx, p.Y * sy}
	}
	return out
}

// Bounds returns the axis-aligned extent of s. An empty silhouette has a
// zero Rect.
func (s Silhouette) Bounds() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Top returns the highest Y of s.
func (s Silhouette) Top() float64 {
	b := s.Bounds()
	return b.Y + b.Height
}
