package xlsxgrid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area represents cell coordinate bounds.
type Area struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// String returns the area in A1:B2 notation.
func (a Area) String() string {
	start, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	end, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// ParseRange parses a range string like $A$1:$D$10 or B2:C3.
// Reversed corners are normalized.
func ParseRange(rangeStr string) (Area, error) {
	// Remove $ signs
	cleaned := strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(cleaned, ":")
	if len(parts) != 2 {
		return Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
	}

	return Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// PrintAreas returns the print areas of a workbook keyed by sheet name.
func PrintAreas(f *excelize.File) map[string][]Area {
	result := make(map[string][]Area)

	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			sheetName, areas := parsePrintAreaReference(dn.RefersTo)
			if sheetName == "" {
				sheetName = dn.Scope
			}
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []Area) {
	var areas []Area

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}

		if area, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// dataBounds finds the bounding box of non-empty cells.
// ok is false when every cell is empty.
func dataBounds(rows [][]string) (area Area, ok bool) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			r, c := rowIdx+1, colIdx+1
			if !ok {
				area = Area{R1: r, C1: c, R2: r, C2: c}
				ok = true
				continue
			}
			area.R1 = min(area.R1, r)
			area.R2 = max(area.R2, r)
			area.C1 = min(area.C1, c)
			area.C2 = max(area.C2, c)
		}
	}
	return area, ok
}

// usedArea covers every returned row and the longest row.
func usedArea(rows [][]string) (Area, bool) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if len(rows) == 0 || width == 0 {
		return Area{}, false
	}
	return Area{R1: 1, C1: 1, R2: len(rows), C2: width}, true
}

// clip intersects area with extent. ok is false when they do not overlap.
func clip(area, extent Area) (Area, bool) {
	clipped := Area{
		R1: max(area.R1, extent.R1),
		C1: max(area.C1, extent.C1),
		R2: min(area.R2, extent.R2),
		C2: min(area.C2, extent.C2),
	}
	if clipped.R1 > clipped.R2 || clipped.C1 > clipped.C2 {
		return Area{}, false
	}
	return clipped, true
}

// cut copies the cells inside area, padding ragged rows with empty cells.
func cut(rows [][]string, area Area) [][]string {
	out := make([][]string, 0, area.R2-area.R1+1)
	for r := area.R1; r <= area.R2; r++ {
		line := make([]string, area.C2-area.C1+1)
		if r-1 < len(rows) {
			src := rows[r-1]
			for c := area.C1; c <= area.C2 && c-1 < len(src); c++ {
				line[c-area.C1] = src[c-1]
			}
		}
		out = append(out, line)
	}
	return out
}
