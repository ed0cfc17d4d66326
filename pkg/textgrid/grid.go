package textgrid

import (
	"github.com/tiendc/go-deepcopy"
)

// Grid is a rectangular table of text cells.
//
// A Grid always has at least one row and one column, and every row has the
// same number of cells. It is not safe for concurrent use. Only New, Parse and
// Clone produce a usable Grid; the zero value has no cells.
type Grid struct {
	cells [][]string
}

// New creates a rows x columns grid of empty cells.
// Both dimensions must be positive.
func New(rows, columns int) (*Grid, error) {
	switch {
	case rows <= 0 && columns <= 0:
		return nil, invalidArgument("new", "cannot create a grid with 0 cells (rows=%d, columns=%d)", rows, columns)
	case rows <= 0:
		return nil, invalidArgument("new", "cannot create a grid with %d rows", rows)
	case columns <= 0:
		return nil, invalidArgument("new", "cannot create a grid with %d columns", columns)
	}

	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, columns)
	}
	return &Grid{cells: cells}, nil
}

// Parse creates a grid holding a copy of data.
// data must be non-empty and rectangular.
func Parse(data [][]string) (*Grid, error) {
	if len(data) == 0 {
		return nil, invalidArgument("parse", "cannot create a grid with 0 rows")
	}

	columns := len(data[0])
	if columns == 0 {
		return nil, invalidArgument("parse", "cannot create a grid with 0 columns")
	}

	for i, row := range data {
		if len(row) != columns {
			return nil, invalidArgument("parse", "row %d has %d columns, expected %d", i, len(row), columns)
		}
	}

	cells, err := copyCells(data)
	if err != nil {
		return nil, err
	}
	return &Grid{cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Rows returns a copy of all cells, row by row.
func (g *Grid) Rows() [][]string {
	cells, err := copyCells(g.cells)
	if err != nil {
		// [][]string always copies cleanly.
		panic(err)
	}
	return cells
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.Rows()}
}

// copyCells deep-copies a row set so no row slice is shared with the caller.
func copyCells(src [][]string) ([][]string, error) {
	var dst [][]string
	if err := deepcopy.Copy(&dst, src); err != nil {
		return nil, NewGridError("copy", ErrInvalidArgument, "copying cells: %v", err)
	}
	return dst, nil
}
