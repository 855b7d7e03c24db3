package ast

import (
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

// ObjectExtension is `extend type Name ...`. A nil Fields means the
// extension has no field block, which differs from an empty one.
type ObjectExtension struct {
	Desc       *StringValue       `json:"desc"`
	Name       *Name              `json:"name"`
	Interfaces []*Named           `json:"interfaces"`
	Directives []*Directive       `json:"directives"`
	Fields     []*FieldDefinition `json:"fields"`
	Loc        errors.Location    `json:"loc"`
}

func (o *ObjectExtension) IsDefinition() {}

func (o *ObjectExtension) IsTypeSystemExtension() {}

func (o *ObjectExtension) GetKind() string {
	return kinds.ObjectExtension
}

func (o *ObjectExtension) Location() errors.Location {
	return o.Loc
}

func (o *ObjectExtension) GetFields() []*FieldDefinition {
	return o.Fields
}

func (o *ObjectExtension) String() string {
	p := &printer{}
	p.description(o.Desc, "")
	p.write("extend type ", o.Name.Name, printImplements(o.Interfaces), printDirectives(o.Directives))
	if o.Fields != nil {
		p.fields(o.Fields)
	}
	return p.String()
}
