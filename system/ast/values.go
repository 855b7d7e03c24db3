package ast

import (
	"strconv"
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

type Value interface {
	Node
	IsValue()
}

var _ Value = (*Variable)(nil)
var _ Value = (*IntValue)(nil)
var _ Value = (*FloatValue)(nil)
var _ Value = (*StringValue)(nil)
var _ Value = (*BooleanValue)(nil)
var _ Value = (*NullValue)(nil)
var _ Value = (*EnumValue)(nil)
var _ Value = (*ListValue)(nil)
var _ Value = (*ObjectValue)(nil)

type Variable struct {
	Name *Name           `json:"name"`
	Loc  errors.Location `json:"loc"`
}

func (v *Variable) GetKind() string {
	return kinds.Variable
}

func (v *Variable) Location() errors.Location {
	return v.Loc
}

func (v *Variable) String() string {
	return "$" + v.Name.Name
}

func (v *Variable) IsValue() {}

type IntValue struct {
	Value int64           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (i *IntValue) GetKind() string {
	return kinds.IntValue
}

func (i *IntValue) Location() errors.Location {
	return i.Loc
}

func (i *IntValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (i *IntValue) IsValue() {}

type FloatValue struct {
	Value float64         `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (f *FloatValue) GetKind() string {
	return kinds.FloatValue
}

func (f *FloatValue) Location() errors.Location {
	return f.Loc
}

// String always keeps a fractional part so the text lexes as a Float.
func (f *FloatValue) String() string {
	s := strconv.FormatFloat(f.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (f *FloatValue) IsValue() {}

type BooleanValue struct {
	Value bool            `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (b *BooleanValue) GetKind() string {
	return kinds.BooleanValue
}

func (b *BooleanValue) Location() errors.Location {
	return b.Loc
}

func (b *BooleanValue) String() string {
	return strconv.FormatBool(b.Value)
}

func (b *BooleanValue) IsValue() {}

type NullValue struct {
	Loc errors.Location `json:"loc"`
}

func (n *NullValue) GetKind() string {
	return kinds.NullValue
}

func (n *NullValue) Location() errors.Location {
	return n.Loc
}

func (n *NullValue) String() string {
	return "null"
}

func (n *NullValue) IsValue() {}

type EnumValue struct {
	Value string          `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (e *EnumValue) GetKind() string {
	return kinds.EnumValue
}

func (e *EnumValue) Location() errors.Location {
	return e.Loc
}

func (e *EnumValue) String() string {
	return e.Value
}

func (e *EnumValue) IsValue() {}

type ListValue struct {
	Values []Value         `json:"values"`
	Loc    errors.Location `json:"loc"`
}

func (l *ListValue) GetKind() string {
	return kinds.ListValue
}

func (l *ListValue) Location() errors.Location {
	return l.Loc
}

func (l *ListValue) String() string {
	values := make([]string, len(l.Values))
	for i, v := range l.Values {
		values[i] = v.String()
	}
	return "[" + strings.Join(values, ", ") + "]"
}

func (l *ListValue) IsValue() {}

type ObjectValue struct {
	Fields []*ObjectField  `json:"fields"`
	Loc    errors.Location `json:"loc"`
}

func (o *ObjectValue) GetKind() string {
	return kinds.ObjectValue
}

func (o *ObjectValue) Location() errors.Location {
	return o.Loc
}

func (o *ObjectValue) String() string {
	fields := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = f.String()
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

func (o *ObjectValue) IsValue() {}

type ObjectField struct {
	Name  *Name           `json:"name"`
	Value Value           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (o *ObjectField) GetKind() string {
	return kinds.ObjectField
}

func (o *ObjectField) Location() errors.Location {
	return o.Loc
}

func (o *ObjectField) String() string {
	return o.Name.Name + ": " + o.Value.String()
}
