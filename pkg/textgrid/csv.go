package textgrid

import (
	"encoding/csv"
	"strings"
)

// CSV returns the cells as comma-separated lines joined by "\n", without a
// trailing newline. Cells are quoted where encoding/csv requires it (commas,
// quotes, line breaks, leading spaces).
func (g *Grid) CSV() (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(g.cells); err != nil {
		return "", NewGridError("csv", ErrInvalidArgument, "writing csv: %v", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
