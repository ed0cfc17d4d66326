package textgrid

import "slices"

// InsertRow inserts count empty rows before row at.
// at == Height() appends.
func (g *Grid) InsertRow(at, count int) error {
	if count < 1 {
		return invalidArgument("insert_row", "count must be greater than 0, got %d", count)
	}
	if at < 0 || at > g.Height() {
		return outOfRange("insert_row", "row position %d not in [0, %d]", at, g.Height())
	}

	rows := make([][]string, count)
	for i := range rows {
		rows[i] = make([]string, g.Width())
	}
	g.cells = slices.Insert(g.cells, at, rows...)
	return nil
}

// InsertColumn inserts count empty columns before column at.
// at == Width() appends.
func (g *Grid) InsertColumn(at, count int) error {
	if count < 1 {
		return invalidArgument("insert_column", "count must be greater than 0, got %d", count)
	}
	if at < 0 || at > g.Width() {
		return outOfRange("insert_column", "column position %d not in [0, %d]", at, g.Width())
	}

	for i, row := range g.cells {
		g.cells[i] = slices.Insert(row, at, make([]string, count)...)
	}
	return nil
}

// Add inserts count empty rows or columns at the given edge.
// where may also be a short token such as Direction("T").
func (g *Grid) Add(where Direction, count int) error {
	where, err := ParseDirection(string(where))
	if err != nil {
		return err
	}

	switch where {
	case Top:
		return g.InsertRow(0, count)
	case Bottom:
		return g.InsertRow(g.Height(), count)
	case Left:
		return g.InsertColumn(0, count)
	case Right:
		return g.InsertColumn(g.Width(), count)
	}
	return invalidArgument("add", "unknown direction: %q", string(where))
}

// Delete removes row or column index depending on axis.
func (g *Grid) Delete(axis Axis, index int) error {
	axis, err := ParseAxis(string(axis))
	if err != nil {
		return err
	}

	if axis == AxisRow {
		return g.DeleteRow(index)
	}
	return g.DeleteColumn(index)
}

// DeleteRow removes row index. The last remaining row cannot be removed.
func (g *Grid) DeleteRow(index int) error {
	if g.Height() == 1 {
		return invalidArgument("delete_row", "cannot remove the last row of the grid")
	}
	if index < 0 || index >= g.Height() {
		return outOfRange("delete_row", "row %d not in [0, %d)", index, g.Height())
	}

	g.cells = slices.Delete(g.cells, index, index+1)
	return nil
}

// DeleteColumn removes column index. The last remaining column cannot be removed.
func (g *Grid) DeleteColumn(index int) error {
	if g.Width() == 1 {
		return invalidArgument("delete_column", "cannot remove the last column of the grid")
	}
	if index < 0 || index >= g.Width() {
		return outOfRange("delete_column", "column %d not in [0, %d)", index, g.Width())
	}

	for i, row := range g.cells {
		g.cells[i] = slices.Delete(row, index, index+1)
	}
	return nil
}
