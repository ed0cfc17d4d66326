package textgrid

// Get returns the cell at row, column (0-based).
func (g *Grid) Get(row, column int) (string, error) {
	if err := g.checkCell("get", row, column); err != nil {
		return "", err
	}
	return g.cells[row][column], nil
}

// Set overwrites the cell at row, column (0-based).
func (g *Grid) Set(row, column int, value string) error {
	if err := g.checkCell("set", row, column); err != nil {
		return err
	}
	g.cells[row][column] = value
	return nil
}

// Row returns a copy of row index.
func (g *Grid) Row(index int) ([]string, error) {
	if err := g.checkRow("row", index); err != nil {
		return nil, err
	}
	row := make([]string, g.Width())
	copy(row, g.cells[index])
	return row, nil
}

// Column returns a copy of column index, top to bottom.
func (g *Grid) Column(index int) ([]string, error) {
	if err := g.checkColumn("column", index); err != nil {
		return nil, err
	}
	column := make([]string, g.Height())
	for i, row := range g.cells {
		column[i] = row[index]
	}
	return column, nil
}

func (g *Grid) checkCell(op string, row, column int) error {
	if err := g.checkRow(op, row); err != nil {
		return err
	}
	return g.checkColumn(op, column)
}

func (g *Grid) checkRow(op string, index int) error {
	if index < 0 || index >= g.Height() {
		return outOfRange(op, "row %d not in [0, %d)", index, g.Height())
	}
	return nil
}

func (g *Grid) checkColumn(op string, index int) error {
	if index < 0 || index >= g.Width() {
		return outOfRange(op, "column %d not in [0, %d)", index, g.Width())
	}
	return nil
}
