// Package xlsxgrid loads worksheet cells into a textgrid.Grid and writes a
// grid back into a workbook.
package xlsxgrid

// LoadOptions configures which cells of a workbook are loaded.
type LoadOptions struct {
	// Sheet is the sheet name. If empty, the first sheet is used.
	Sheet string
	// Range restricts loading to a cell range such as "A1:D10" ($ allowed).
	// The range is clipped to the rows and columns holding cells.
	Range string
	// PrintArea restricts loading to the sheet's defined print area.
	// Ignored when Range is set.
	PrintArea bool
	// Trim crops to the bounding box of non-empty cells.
	// Only applies when neither Range nor PrintArea is set.
	Trim bool
}

// DefaultLoadOptions returns default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Trim: true,
	}
}
