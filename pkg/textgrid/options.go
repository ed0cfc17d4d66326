// Package textgrid provides an in-memory rectangular grid of text cells with
// structural edits and bordered, column-aligned text rendering.
package textgrid

// Alignment represents how a cell is padded to its column width.
type Alignment string

const (
	// AlignLeft pads on the right.
	AlignLeft Alignment = "Left"
	// AlignRight pads on the left.
	AlignRight Alignment = "Right"
	// AlignCenter splits padding, the smaller half before the text.
	AlignCenter Alignment = "Center"
)

// ParseAlignment maps an alignment token to an Alignment.
// Accepted spellings are Left, L, Right, R, Center and C, case-sensitive.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "Left", "L":
		return AlignLeft, nil
	case "Right", "R":
		return AlignRight, nil
	case "Center", "C":
		return AlignCenter, nil
	}
	return "", invalidArgument("parse_alignment", "unknown alignment: %q", s)
}

// Direction names a grid edge for Add.
type Direction string

const (
	// Top inserts rows before row 0.
	Top Direction = "Top"
	// Bottom appends rows.
	Bottom Direction = "Bottom"
	// Left inserts columns before column 0.
	Left Direction = "Left"
	// Right appends columns.
	Right Direction = "Right"
)

// ParseDirection maps a direction token to a Direction.
// Accepted spellings are Top, T, Bottom, B, Left, L, Right and R, case-sensitive.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Top", "T":
		return Top, nil
	case "Bottom", "B":
		return Bottom, nil
	case "Left", "L":
		return Left, nil
	case "Right", "R":
		return Right, nil
	}
	return "", invalidArgument("parse_direction", "unknown direction: %q", s)
}

// Axis selects rows or columns for Delete.
type Axis string

const (
	// AxisRow addresses a row.
	AxisRow Axis = "Row"
	// AxisColumn addresses a column.
	AxisColumn Axis = "Column"
)

// ParseAxis maps an axis token to an Axis.
// Accepted spellings are Row, R, Column and C, case-sensitive.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "Row", "R":
		return AxisRow, nil
	case "Column", "C":
		return AxisColumn, nil
	}
	return "", invalidArgument("parse_axis", "unknown type: %q", s)
}

// Border represents the character set used for separators.
type Border string

const (
	// BorderASCII draws separators with '+', '-' and '|'.
	BorderASCII Border = "ascii"
	// BorderBox draws separators with box-drawing characters and distinguishes
	// the top, middle and bottom lines.
	BorderBox Border = "box"
)

// Options configures rendering.
type Options struct {
	// Alignment is applied to every cell.
	Alignment Alignment
	// Border selects the separator character set.
	// If empty, defaults to BorderASCII.
	Border Border
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{
		Alignment: AlignLeft,
		Border:    BorderASCII,
	}
}

func (o Options) border() Border {
	if o.Border == "" {
		return BorderASCII
	}
	return o.Border
}
