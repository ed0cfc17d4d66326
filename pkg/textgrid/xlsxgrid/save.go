package xlsxgrid

import (
	"github.com/ukaji3/textgrid-go/pkg/textgrid"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ToFile writes the grid into a new workbook, starting at A1 of sheet.
// Cells are stored as strings; empty cells are left unset.
func ToFile(g *textgrid.Grid, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet != "" && sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			f.Close()
			return nil, err
		}
	} else {
		sheet = defaultSheet
	}

	for r, row := range g.Rows() {
		for c, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellStr(sheet, cellName, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// Save writes the grid to an xlsx file at path.
func Save(g *textgrid.Grid, path, sheet string) error {
	f, err := ToFile(g, sheet)
	if err != nil {
		return NewLoadError(path, sheet, err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return NewLoadError(path, sheet, err)
	}
	return nil
}
