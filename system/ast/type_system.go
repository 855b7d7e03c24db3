package ast

import (
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
	"github.com/shyptr/gqldb/system/token"
)

type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// SchemaDefinition names the root operation types.
//
//	schema {
//	  query: Query
//	}
type SchemaDefinition struct {
	Desc           *StringValue               `json:"desc"`
	Directives     []*Directive               `json:"directives"`
	OperationTypes []*OperationTypeDefinition `json:"operationTypes"`
	Loc            errors.Location            `json:"loc"`
}

func (s *SchemaDefinition) IsDefinition() {}

func (s *SchemaDefinition) IsTypeSystemDefinition() {}

func (s *SchemaDefinition) GetKind() string {
	return kinds.SchemaDefinition
}

func (s *SchemaDefinition) Location() errors.Location {
	return s.Loc
}

func (s *SchemaDefinition) String() string {
	p := &printer{}
	p.description(s.Desc, "")
	p.write("schema", printDirectives(s.Directives))
	lines := make([]string, len(s.OperationTypes))
	for i, op := range s.OperationTypes {
		lines[i] = op.String()
	}
	p.block(lines)
	return p.String()
}

type OperationTypeDefinition struct {
	Operation OperationType   `json:"operation"`
	Type      *Named          `json:"type"`
	Loc       errors.Location `json:"loc"`
}

func (o *OperationTypeDefinition) GetKind() string {
	return kinds.OperationTypeDefinition
}

func (o *OperationTypeDefinition) Location() errors.Location {
	return o.Loc
}

func (o *OperationTypeDefinition) String() string {
	return string(o.Operation) + ": " + o.Type.String()
}

type ScalarDefinition struct {
	Desc       *StringValue    `json:"desc"`
	Name       *Name           `json:"name"`
	Directives []*Directive    `json:"directives"`
	Loc        errors.Location `json:"loc"`
}

func (s *ScalarDefinition) IsDefinition() {}

func (s *ScalarDefinition) IsTypeSystemDefinition() {}

func (s *ScalarDefinition) IsTypeDefinition() {}

func (s *ScalarDefinition) TypeName() string {
	return s.Name.Name
}

func (s *ScalarDefinition) GetKind() string {
	return kinds.ScalarDefinition
}

func (s *ScalarDefinition) Location() errors.Location {
	return s.Loc
}

func (s *ScalarDefinition) String() string {
	p := &printer{}
	p.description(s.Desc, "")
	p.write("scalar ", s.Name.Name, printDirectives(s.Directives))
	return p.String()
}

// ObjectDefinition is a `type` definition. Fields is never empty.
type ObjectDefinition struct {
	Desc       *StringValue       `json:"desc"`
	Name       *Name              `json:"name"`
	Interfaces []*Named           `json:"interfaces"`
	Directives []*Directive       `json:"directives"`
	Fields     []*FieldDefinition `json:"fields"`
	Loc        errors.Location    `json:"loc"`
}

// NewObjectDefinition rejects a definition without fields, reporting the
// location of the type name.
func NewObjectDefinition(nameTok token.Token, desc *StringValue, interfaces []*Named, directives []*Directive, fields []*FieldDefinition) (*ObjectDefinition, error) {
	name, err := NewName(nameTok)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.NewObjectEmpty(nameTok.Loc)
	}
	return &ObjectDefinition{
		Desc:       desc,
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
		Loc:        name.Loc,
	}, nil
}

func (o *ObjectDefinition) IsDefinition() {}

func (o *ObjectDefinition) IsTypeSystemDefinition() {}

func (o *ObjectDefinition) IsTypeDefinition() {}

func (o *ObjectDefinition) TypeName() string {
	return o.Name.Name
}

func (o *ObjectDefinition) GetKind() string {
	return kinds.ObjectDefinition
}

func (o *ObjectDefinition) Location() errors.Location {
	return o.Loc
}

func (o *ObjectDefinition) GetFields() []*FieldDefinition {
	return o.Fields
}

func (o *ObjectDefinition) String() string {
	p := &printer{}
	p.description(o.Desc, "")
	p.write("type ", o.Name.Name, printImplements(o.Interfaces), printDirectives(o.Directives))
	p.fields(o.Fields)
	return p.String()
}

type FieldDefinition struct {
	Desc       *StringValue            `json:"desc"`
	Name       *Name                   `json:"name"`
	Args       []*InputValueDefinition `json:"args"`
	Type       Type                    `json:"type"`
	Directives []*Directive            `json:"directives"`
	Loc        errors.Location         `json:"loc"`
}

func (f *FieldDefinition) GetKind() string {
	return kinds.FieldDefinition
}

func (f *FieldDefinition) Location() errors.Location {
	return f.Loc
}

func (f *FieldDefinition) String() string {
	p := &printer{}
	p.fieldDefinition(f, "")
	return p.String()
}

func (f *FieldDefinition) signature() string {
	var sb strings.Builder
	sb.WriteString(f.Name.Name)
	if len(f.Args) > 0 {
		args := make([]string, len(f.Args))
		for i, arg := range f.Args {
			args[i] = arg.String()
		}
		sb.WriteString("(" + strings.Join(args, ", ") + ")")
	}
	sb.WriteString(": " + f.Type.String())
	sb.WriteString(printDirectives(f.Directives))
	return sb.String()
}

// InputValueDefinition is an argument definition or an input object field.
type InputValueDefinition struct {
	Desc         *StringValue    `json:"desc"`
	Name         *Name           `json:"name"`
	Type         Type            `json:"type"`
	DefaultValue Value           `json:"defaultValue"`
	Directives   []*Directive    `json:"directives"`
	Loc          errors.Location `json:"loc"`
}

func (i *InputValueDefinition) GetKind() string {
	return kinds.InputValueDefinition
}

func (i *InputValueDefinition) Location() errors.Location {
	return i.Loc
}

func (i *InputValueDefinition) String() string {
	var sb strings.Builder
	if i.Desc != nil {
		sb.WriteString(i.Desc.String() + " ")
	}
	sb.WriteString(i.Name.Name + ": " + i.Type.String())
	if i.DefaultValue != nil {
		sb.WriteString(" = " + i.DefaultValue.String())
	}
	sb.WriteString(printDirectives(i.Directives))
	return sb.String()
}

// InterfaceDefinition may have no fields and never implements anything.
type InterfaceDefinition struct {
	Desc       *StringValue       `json:"desc"`
	Name       *Name              `json:"name"`
	Directives []*Directive       `json:"directives"`
	Fields     []*FieldDefinition `json:"fields"`
	Loc        errors.Location    `json:"loc"`
}

func (i *InterfaceDefinition) IsDefinition() {}

func (i *InterfaceDefinition) IsTypeSystemDefinition() {}

func (i *InterfaceDefinition) IsTypeDefinition() {}

func (i *InterfaceDefinition) TypeName() string {
	return i.Name.Name
}

func (i *InterfaceDefinition) GetKind() string {
	return kinds.InterfaceDefinition
}

func (i *InterfaceDefinition) Location() errors.Location {
	return i.Loc
}

func (i *InterfaceDefinition) GetFields() []*FieldDefinition {
	return i.Fields
}

func (i *InterfaceDefinition) String() string {
	p := &printer{}
	p.description(i.Desc, "")
	p.write("interface ", i.Name.Name, printDirectives(i.Directives))
	p.fields(i.Fields)
	return p.String()
}

type UnionDefinition struct {
	Desc       *StringValue    `json:"desc"`
	Name       *Name           `json:"name"`
	Directives []*Directive    `json:"directives"`
	Types      []*Named        `json:"types"`
	Loc        errors.Location `json:"loc"`
}

func (u *UnionDefinition) IsDefinition() {}

func (u *UnionDefinition) IsTypeSystemDefinition() {}

func (u *UnionDefinition) IsTypeDefinition() {}

func (u *UnionDefinition) TypeName() string {
	return u.Name.Name
}

func (u *UnionDefinition) GetKind() string {
	return kinds.UnionDefinition
}

func (u *UnionDefinition) Location() errors.Location {
	return u.Loc
}

func (u *UnionDefinition) String() string {
	p := &printer{}
	p.description(u.Desc, "")
	members := make([]string, len(u.Types))
	for i, t := range u.Types {
		members[i] = t.String()
	}
	p.write("union ", u.Name.Name, printDirectives(u.Directives), " = ", strings.Join(members, " | "))
	return p.String()
}

type EnumDefinition struct {
	Desc       *StringValue           `json:"desc"`
	Name       *Name                  `json:"name"`
	Directives []*Directive           `json:"directives"`
	Values     []*EnumValueDefinition `json:"values"`
	Loc        errors.Location        `json:"loc"`
}

func (e *EnumDefinition) IsDefinition() {}

func (e *EnumDefinition) IsTypeSystemDefinition() {}

func (e *EnumDefinition) IsTypeDefinition() {}

func (e *EnumDefinition) TypeName() string {
	return e.Name.Name
}

func (e *EnumDefinition) GetKind() string {
	return kinds.EnumDefinition
}

func (e *EnumDefinition) Location() errors.Location {
	return e.Loc
}

func (e *EnumDefinition) String() string {
	p := &printer{}
	p.description(e.Desc, "")
	p.write("enum ", e.Name.Name, printDirectives(e.Directives), " {\n")
	for _, v := range e.Values {
		p.description(v.Desc, indent)
		p.write(indent, v.String(), "\n")
	}
	p.write("}")
	return p.String()
}

type EnumValueDefinition struct {
	Desc       *StringValue    `json:"desc"`
	Name       *Name           `json:"name"`
	Directives []*Directive    `json:"directives"`
	Loc        errors.Location `json:"loc"`
}

func (e *EnumValueDefinition) GetKind() string {
	return kinds.EnumValueDefinition
}

func (e *EnumValueDefinition) Location() errors.Location {
	return e.Loc
}

// String omits the description, which the enum prints on its own line.
func (e *EnumValueDefinition) String() string {
	return e.Name.Name + printDirectives(e.Directives)
}

// InputObjectDefinition is an `input` definition. Fields is never empty.
type InputObjectDefinition struct {
	Desc       *StringValue            `json:"desc"`
	Name       *Name                   `json:"name"`
	Directives []*Directive            `json:"directives"`
	Fields     []*InputValueDefinition `json:"fields"`
	Loc        errors.Location         `json:"loc"`
}

// NewInputObjectDefinition rejects an input without fields, reporting the
// location of the opening brace.
func NewInputObjectDefinition(name *Name, desc *StringValue, directives []*Directive, fields []*InputValueDefinition, brace errors.Location) (*InputObjectDefinition, error) {
	if len(fields) == 0 {
		return nil, errors.NewObjectEmpty(brace)
	}
	return &InputObjectDefinition{
		Desc:       desc,
		Name:       name,
		Directives: directives,
		Fields:     fields,
		Loc:        name.Loc,
	}, nil
}

func (i *InputObjectDefinition) IsDefinition() {}

func (i *InputObjectDefinition) IsTypeSystemDefinition() {}

func (i *InputObjectDefinition) IsTypeDefinition() {}

func (i *InputObjectDefinition) TypeName() string {
	return i.Name.Name
}

func (i *InputObjectDefinition) GetKind() string {
	return kinds.InputObjectDefinition
}

func (i *InputObjectDefinition) Location() errors.Location {
	return i.Loc
}

func (i *InputObjectDefinition) String() string {
	p := &printer{}
	p.description(i.Desc, "")
	p.write("input ", i.Name.Name, printDirectives(i.Directives), " {\n")
	for _, f := range i.Fields {
		p.write(indent, f.String(), "\n")
	}
	p.write("}")
	return p.String()
}

func printImplements(interfaces []*Named) string {
	if len(interfaces) == 0 {
		return ""
	}
	names := make([]string, len(interfaces))
	for i, n := range interfaces {
		names[i] = n.String()
	}
	return " implements " + strings.Join(names, " & ")
}
