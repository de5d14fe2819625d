// Package bitmap converts painted pixel grids into the vectors the network
// consumes: a drawing becomes an ordered 0/1 intensity sequence and a class
// label becomes a one-hot target.
package bitmap

import (
	"fmt"
	"strings"
)

// Grid is a rectangular black-and-white pixel grid.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// Parse reads a grid from its text form: one line per row, '#' for a painted
// pixel and '.' for an empty one. Blank leading and trailing lines are
// ignored. Returns an error for ragged rows, unknown characters or an empty
// grid.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("bitmap: empty grid")
	}

	width := len(lines[0])
	g := &Grid{
		width:  width,
		height: len(lines),
		cells:  make([]bool, width*len(lines)),
	}
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("bitmap: row %d has %d pixels, expected %d", row, len(line), width)
		}
		for col, c := range line {
			switch c {
			case '#':
				g.cells[row*width+col] = true
			case '.':
			default:
				return nil, fmt.Errorf("bitmap: unknown pixel %q at row %d, column %d", c, row, col)
			}
		}
	}
	return g, nil
}

// Width returns the pixel column count.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the pixel row count.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total pixel count, which is the input-vector length.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Vector returns the grid as an ordered sequence of 0/1 intensities in
// row-major order.
func (g *Grid) Vector() []float64 {
	out := make([]float64, len(g.cells))
	for i, painted := range g.cells {
		if painted {
			out[i] = 1
		}
	}
	return out
}

// String renders the grid back as '#'/'.' rows.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if row < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// OneHot encodes a class label as a target vector of the given length, with
// the labeled element set to 1 and every other element 0.
func OneHot(class, classes int) ([]float64, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("bitmap: class count must be positive, got %d", classes)
	}
	if class < 0 || class >= classes {
		return nil, fmt.Errorf("bitmap: class %d out of range [0,%d)", class, classes)
	}
	out := make([]float64, classes)
	out[class] = 1
	return out, nil
}
