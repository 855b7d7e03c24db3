package token

import (
	"fmt"
	"strconv"

	"github.com/shyptr/gqldb/errors"
)

type Kind int

const (
	Start Kind = iota
	End
	Bang
	Dollar
	Amp
	OpenParen
	CloseParen
	Spread
	Colon
	Equals
	At
	OpenSquare
	CloseSquare
	OpenBrace
	CloseBrace
	Pipe
	Name
	Int
	Float
	Str
	BlockStr
	Comment
)

var kindNames = [...]string{
	Start:       "Start",
	End:         "End",
	Bang:        "Bang",
	Dollar:      "Dollar",
	Amp:         "Amp",
	OpenParen:   "OpenParen",
	CloseParen:  "CloseParen",
	Spread:      "Spread",
	Colon:       "Colon",
	Equals:      "Equals",
	At:          "At",
	OpenSquare:  "OpenSquare",
	CloseSquare: "CloseSquare",
	OpenBrace:   "OpenBrace",
	CloseBrace:  "CloseBrace",
	Pipe:        "Pipe",
	Name:        "Name",
	Int:         "Int",
	Float:       "Float",
	Str:         "Str",
	BlockStr:    "BlockStr",
	Comment:     "Comment",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Display is the form used in parse errors, e.g. Token<OpenBrace>.
func (k Kind) Display() string {
	return "Token<" + k.String() + ">"
}

// single character punctuators
var punctuators = map[byte]Kind{
	'!': Bang,
	'$': Dollar,
	'&': Amp,
	'|': Pipe,
	'@': At,
	':': Colon,
	'=': Equals,
	'(': OpenParen,
	')': CloseParen,
	'[': OpenSquare,
	']': CloseSquare,
	'{': OpenBrace,
	'}': CloseBrace,
}

// Punctuator returns the kind of a single character punctuator.
func Punctuator(c byte) (Kind, bool) {
	k, ok := punctuators[c]
	return k, ok
}

// Token is a lexical unit. Value holds the raw text of Name, Str and
// BlockStr tokens; Int and Float hold converted numbers.
type Token struct {
	Kind  Kind
	Loc   errors.Location
	Value string
	Int   int64
	Float float64
}

// Equal compares kind and payload, ignoring location.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Name, Str, BlockStr:
		return t.Value == o.Value
	case Int:
		return t.Int == o.Int
	case Float:
		return t.Float == o.Float
	}
	return true
}

func (t Token) String() string {
	switch t.Kind {
	case Name, Str, BlockStr:
		return fmt.Sprintf("Token<%s(%s)>", t.Kind, t.Value)
	case Int:
		return fmt.Sprintf("Token<Int(%d)>", t.Int)
	case Float:
		return fmt.Sprintf("Token<Float(%s)>", strconv.FormatFloat(t.Float, 'f', -1, 64))
	}
	return t.Kind.Display()
}
