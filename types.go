package quicknav

import "fmt"

// Position is a location in a text model. Line and Column are 1-based,
// matching editor conventions.
type Position struct {
	Line   int
	Column int
}

// Range is a span between two positions. A range whose Start equals its End
// is empty.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a range from explicit line/column pairs.
func NewRange(startLine, startColumn, endLine, endColumn int) Range {
	return Range{
		Start: Position{Line: startLine, Column: startColumn},
		End:   Position{Line: endLine, Column: endColumn},
	}
}

// LineRange builds a range covering a single line from startColumn to
// endColumn.
func LineRange(line, startColumn, endColumn int) Range {
	return NewRange(line, startColumn, line, endColumn)
}

// IsZero reports whether the range is the zero value.
func (r Range) IsZero() bool {
	return r == Range{}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
