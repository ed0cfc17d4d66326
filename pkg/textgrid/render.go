package textgrid

import (
	"strings"

	"github.com/ukaji3/textgrid-go/pkg/textgrid/textfmt"
)

// borderSet holds the characters of one separator style.
type borderSet struct {
	fill     string
	vertical string
	// top, middle and bottom separators as {left, junction, right}
	top, middle, bottom [3]string
}

var borderSets = map[Border]borderSet{
	BorderASCII: {
		fill:     "-",
		vertical: "|",
		top:      [3]string{"+", "+", "+"},
		middle:   [3]string{"+", "+", "+"},
		bottom:   [3]string{"+", "+", "+"},
	},
	BorderBox: {
		fill:     "─",
		vertical: "│",
		top:      [3]string{"┌", "┬", "┐"},
		middle:   [3]string{"├", "┼", "┤"},
		bottom:   [3]string{"└", "┴", "┘"},
	},
}

// Stringify renders the grid with ASCII borders and the given alignment.
// alignment may be any of Left, L, Right, R, Center or C.
func (g *Grid) Stringify(alignment Alignment) (string, error) {
	return g.Render(Options{Alignment: alignment, Border: BorderASCII})
}

// Render renders the grid as bordered, column-aligned lines joined by "\n".
// The grid is not modified.
func (g *Grid) Render(opts Options) (string, error) {
	alignment, err := ParseAlignment(string(opts.Alignment))
	if err != nil {
		return "", invalidArgument("stringify", "unknown alignment: %q", string(opts.Alignment))
	}
	set, ok := borderSets[opts.border()]
	if !ok {
		return "", invalidArgument("stringify", "unknown border: %q", string(opts.Border))
	}

	widths := g.columnWidths()
	top := separator(widths, set.fill, set.top)
	middle := separator(widths, set.fill, set.middle)
	bottom := separator(widths, set.fill, set.bottom)

	lines := make([]string, 0, 2*g.Height()+1)
	lines = append(lines, top)
	cells := make([]string, g.Width())
	for i, row := range g.cells {
		for j, cell := range row {
			cells[j] = pad(cell, widths[j], alignment)
		}
		lines = append(lines, textfmt.Join(set.vertical+" ", cells, " "+set.vertical+" ", " "+set.vertical))

		if i == g.Height()-1 {
			lines = append(lines, bottom)
		} else {
			lines = append(lines, middle)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// String renders the grid left-aligned with ASCII borders.
func (g *Grid) String() string {
	s, _ := g.Render(DefaultOptions())
	return s
}

// columnWidths returns the widest cell of each column, scanning column by column.
func (g *Grid) columnWidths() []int {
	widths := make([]int, g.Width())
	for j := range widths {
		for _, row := range g.cells {
			if n := textfmt.Len(row[j]); n > widths[j] {
				widths[j] = n
			}
		}
	}
	return widths
}

// separator builds a horizontal rule; each column spans its width plus the
// two spaces around the cell text.
func separator(widths []int, fill string, ends [3]string) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = textfmt.Repeat(fill, w+2)
	}
	return textfmt.Join(ends[0], segments, ends[1], ends[2])
}

func pad(cell string, width int, alignment Alignment) string {
	switch alignment {
	case AlignRight:
		return textfmt.PadLeft(cell, width, " ")
	case AlignCenter:
		return textfmt.PadCenter(cell, width, " ")
	default:
		return textfmt.PadRight(cell, width, " ")
	}
}
