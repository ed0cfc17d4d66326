package xlsxgrid

import (
	"fmt"

	"github.com/ukaji3/textgrid-go/pkg/textgrid"
	"github.com/xuri/excelize/v2"
)

// Load opens an xlsx file and loads one sheet into a grid.
func Load(path string, opts LoadOptions) (*textgrid.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, opts.Sheet, err)
	}
	defer f.Close()

	g, err := FromFile(f, opts)
	if err != nil {
		return nil, NewLoadError(path, opts.Sheet, err)
	}
	return g, nil
}

// FromFile loads one sheet of an open workbook into a grid.
// An empty selection yields a 1x1 grid with an empty cell.
func FromFile(f *excelize.File, opts LoadOptions) (*textgrid.Grid, error) {
	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	area, ok, err := selectArea(f, sheetName, rows, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return textgrid.New(1, 1)
	}

	return textgrid.Parse(cut(rows, area))
}

// resolveSheet returns name, or the first sheet when name is empty.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// selectArea picks the cells to load. Explicit ranges and print areas are
// clipped to the rows the sheet actually holds.
func selectArea(f *excelize.File, sheetName string, rows [][]string, opts LoadOptions) (Area, bool, error) {
	switch {
	case opts.Range != "":
		area, err := ParseRange(opts.Range)
		if err != nil {
			return Area{}, false, err
		}
		return clipToData(area, rows)
	case opts.PrintArea:
		areas := PrintAreas(f)[sheetName]
		if len(areas) == 0 {
			return Area{}, false, fmt.Errorf("%w on sheet %q", ErrNoPrintArea, sheetName)
		}
		return clipToData(areas[0], rows)
	case opts.Trim:
		area, ok := dataBounds(rows)
		return area, ok, nil
	default:
		area, ok := usedArea(rows)
		return area, ok, nil
	}
}

func clipToData(area Area, rows [][]string) (Area, bool, error) {
	extent, ok := usedArea(rows)
	if !ok {
		return Area{}, false, nil
	}
	area, ok = clip(area, extent)
	return area, ok, nil
}
