// Package term runs the game in a terminal on tcell. Frames are rasterized
// into character cells and feedback cues are synthesized with beep.
package term

import (
	"math"

	"github.com/phanxgames/mrbinaer"
)

// Canvas is a grid of cells onto which screen-space line strips are
// rasterized. The game's screen size maps onto the whole grid.
type Canvas struct {
	Cols, Rows int
	sx, sy     float64 // cells per screen pixel
	cells      []bool
}

// NewCanvas sizes a canvas of cols x rows cells for a game screen of
// width x height pixels.
func NewCanvas(cols, rows, width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows, width, height)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows, width, height int) {
	c.Cols, c.Rows = max(cols, 0), max(rows, 0)
	c.sx = float64(c.Cols) / float64(width)
	c.sy = float64(c.Rows) / float64(height)
	c.cells = make([]bool, c.Cols*c.Rows)
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Inked reports whether the cell at col, row is inked.
func (c *Canvas) Inked(col, row int) bool {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return false
	}
	return c.cells[row*c.Cols+col]
}

// ToCell converts a screen point into the cell containing it.
func (c *Canvas) ToCell(p mrbinaer.Vec2) (col, row int) {
	return int(math.Floor(p.X * c.sx)), int(math.Floor(p.Y * c.sy))
}

// ToScreen converts a cell into the screen point at its center.
func (c *Canvas) ToScreen(col, row int) mrbinaer.Vec2 {
	return mrbinaer.Vec2{X: (float64(col) + 0.5) / c.sx, Y: (float64(row) + 0.5) / c.sy}
}

// Strip inks every segment of a line strip.
func (c *Canvas) Strip(points []mrbinaer.Vec2) {
	for i := 1; i < len(points); i++ {
		x0, y0 := c.ToCell(points[i-1])
		x1, y1 := c.ToCell(points[i])
		c.line(x0, y0, x1, y1)
	}
}

// line inks the cells between two cells with Bresenham's algorithm. Cells
// off the grid are skipped.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	e := dx + dy
	for {
		c.ink(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

func (c *Canvas) ink(col, row int) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row*c.Cols+col] = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
