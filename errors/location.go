package errors

import "fmt"

// Location is a position in the source text. Offset is a byte offset and
// counts newlines; Line and Column start at 1. The zero value is the
// ignored location carried by synthetic tokens.
type Location struct {
	Offset int `json:"-"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func NewLocation(offset, line, column int) Location {
	return Location{Offset: offset, Line: line, Column: column}
}

// Ignored reports whether l is the zero location.
func (l Location) Ignored() bool {
	return l == Location{}
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// locationMessage appends the position to msg.
func locationMessage(msg string, loc Location) string {
	return fmt.Sprintf("%s %s", msg, loc)
}
