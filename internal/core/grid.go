package core

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid reports a grid whose rows do not share a single length or
// whose backing store disagrees with its shape.
var ErrMalformedGrid = errors.New("malformed grid")

// Generation is one immutable snapshot of a two-state grid stored in
// row-major order. A zero Generation is the empty grid.
type Generation struct {
	rows, cols int
	cells      []uint8
}

// NewGeneration allocates an all-dead generation. Negative sizes are treated
// as zero.
func NewGeneration(rows, cols int) Generation {
	if rows <= 0 || cols <= 0 {
		return Generation{}
	}
	return Generation{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// FromCells wraps cells as a rows×cols generation. The slice is owned by the
// returned value and must not be modified afterwards.
func FromCells(rows, cols int, cells []uint8) (Generation, error) {
	if rows <= 0 || cols <= 0 {
		if len(cells) != 0 {
			return Generation{}, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedGrid, len(cells), rows, cols)
		}
		return Generation{}, nil
	}
	if len(cells) != rows*cols {
		return Generation{}, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedGrid, len(cells), rows, cols)
	}
	for i, c := range cells {
		if c != 0 {
			cells[i] = 1
		}
	}
	return Generation{rows: rows, cols: cols, cells: cells}, nil
}

// FromRows copies literal rows into a generation. Any non-zero value is alive.
func FromRows(rows [][]uint8) (Generation, error) {
	if len(rows) == 0 {
		return Generation{}, nil
	}
	cols := len(rows[0])
	cells := make([]uint8, 0, len(rows)*cols)
	for y, row := range rows {
		if len(row) != cols {
			return Generation{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), cols)
		}
		cells = append(cells, row...)
	}
	if cols == 0 {
		return Generation{}, nil
	}
	return FromCells(len(rows), cols, cells)
}

// Rows returns the grid height in cells.
func (g Generation) Rows() int { return g.rows }

// Cols returns the grid width in cells.
func (g Generation) Cols() int { return g.cols }

// Size reports the grid dimensions.
func (g Generation) Size() Size { return Size{W: g.cols, H: g.rows} }

// Empty reports whether the grid has no cells.
func (g Generation) Empty() bool { return g.rows == 0 || g.cols == 0 }

// Index returns the linear slice index for coordinates (x, y).
func (g Generation) Index(x, y int) int { return y*g.cols + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Generation) Wrap(x, y int) (int, int) {
	x = (x%g.cols + g.cols) % g.cols
	y = (y%g.rows + g.rows) % g.rows
	return x, y
}

// At returns the state (0 or 1) of cell (x, y). Coordinates wrap.
func (g Generation) At(x, y int) uint8 {
	if g.Empty() {
		return 0
	}
	x, y = g.Wrap(x, y)
	return g.cells[g.Index(x, y)]
}

// Alive reports whether cell (x, y) is alive. Coordinates wrap.
func (g Generation) Alive(x, y int) bool { return g.At(x, y) != 0 }

// Population counts live cells.
func (g Generation) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Cells returns a copy of the row-major cell values.
func (g Generation) Cells() []uint8 {
	return append([]uint8(nil), g.cells...)
}

// Equal reports whether both generations have the same shape and cells.
func (g Generation) Equal(o Generation) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g Generation) String() string {
	if g.Empty() {
		return ""
	}
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[g.Index(x, y)] != 0 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
