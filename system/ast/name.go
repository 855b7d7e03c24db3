package ast

import (
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
	"github.com/shyptr/gqldb/system/token"
)

type Name struct {
	Name string          `json:"value"`
	Loc  errors.Location `json:"loc"`
}

// NewName builds a Name from a Name token.
func NewName(tok token.Token) (*Name, error) {
	if tok.Kind != token.Name {
		return nil, errors.NewUnexpectedToken(tok.Loc, token.Name.Display(), tok.String())
	}
	return &Name{Name: tok.Value, Loc: tok.Loc}, nil
}

func (n *Name) GetKind() string {
	return kinds.Name
}

func (n *Name) Location() errors.Location {
	return n.Loc
}

func (n *Name) String() string {
	return n.Name
}

// StringValue is a quoted string or a block string. Value is the raw text
// between the quotes.
type StringValue struct {
	Value string          `json:"value"`
	Block bool            `json:"block"`
	Loc   errors.Location `json:"loc"`
}

func NewStringValue(tok token.Token) (*StringValue, error) {
	switch tok.Kind {
	case token.Str:
		return &StringValue{Value: tok.Value, Loc: tok.Loc}, nil
	case token.BlockStr:
		return &StringValue{Value: tok.Value, Block: true, Loc: tok.Loc}, nil
	}
	return nil, errors.NewUnexpectedToken(tok.Loc, token.Str.Display()+" or "+token.BlockStr.Display(), tok.String())
}

func (s *StringValue) GetKind() string {
	return kinds.StringValue
}

func (s *StringValue) Location() errors.Location {
	return s.Loc
}

func (s *StringValue) String() string {
	if s.Block {
		return `"""` + s.Value + `"""`
	}
	return `"` + s.Value + `"`
}

func (s *StringValue) IsValue() {}
