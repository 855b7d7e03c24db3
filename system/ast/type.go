package ast

import (
	"fmt"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

// Type is a type reference: a named type, a list or a non-null wrapper.
type Type interface {
	Node
	IsType()
}

var _ Type = (*Named)(nil)
var _ Type = (*List)(nil)
var _ Type = (*NonNull)(nil)

type WrappingType interface {
	OfType() Type
}

var _ WrappingType = (*List)(nil)
var _ WrappingType = (*NonNull)(nil)

type Named struct {
	Name *Name           `json:"name"`
	Loc  errors.Location `json:"loc"`
}

func (n *Named) GetKind() string {
	return kinds.Named
}

func (n *Named) Location() errors.Location {
	return n.Loc
}

func (n *Named) String() string {
	return n.Name.Name
}

func (n *Named) IsType() {}

type List struct {
	Type Type            `json:"type"`
	Loc  errors.Location `json:"loc"`
}

func (l *List) GetKind() string {
	return kinds.List
}

func (l *List) Location() errors.Location {
	return l.Loc
}

func (l *List) String() string {
	return fmt.Sprintf("[%s]", l.Type.String())
}

func (l *List) IsType() {}

func (l *List) OfType() Type {
	return l.Type
}

// NonNull does not forbid wrapping another NonNull; the parser never
// produces one.
type NonNull struct {
	Type Type            `json:"type"`
	Loc  errors.Location `json:"loc"`
}

func (n *NonNull) GetKind() string {
	return kinds.NonNull
}

func (n *NonNull) Location() errors.Location {
	return n.Loc
}

func (n *NonNull) String() string {
	return fmt.Sprintf("%s!", n.Type.String())
}

func (n *NonNull) IsType() {}

func (n *NonNull) OfType() Type {
	return n.Type
}

// NamedOf unwraps t down to its named type.
func NamedOf(t Type) *Named {
	for {
		switch w := t.(type) {
		case *Named:
			return w
		case WrappingType:
			t = w.OfType()
		default:
			return nil
		}
	}
}
