package ast

import (
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

type Node interface {
	GetKind() string
	Location() errors.Location
	String() string
}

// Definition is a top level entry of a Document.
type Definition interface {
	Node
	IsDefinition()
}

// ExecutableDefinition is a query operation or a fragment.
type ExecutableDefinition interface {
	Definition
	IsExecutableDefinition()
}

var _ ExecutableDefinition = (*OperationDefinition)(nil)
var _ ExecutableDefinition = (*FragmentDefinition)(nil)

// TypeSystemDefinition is a schema definition or a type definition.
type TypeSystemDefinition interface {
	Definition
	IsTypeSystemDefinition()
}

var _ TypeSystemDefinition = (*SchemaDefinition)(nil)
var _ TypeSystemDefinition = (TypeDefinition)(nil)

type TypeDefinition interface {
	TypeSystemDefinition
	IsTypeDefinition()
	TypeName() string
}

var _ TypeDefinition = (*ScalarDefinition)(nil)
var _ TypeDefinition = (*ObjectDefinition)(nil)
var _ TypeDefinition = (*InterfaceDefinition)(nil)
var _ TypeDefinition = (*UnionDefinition)(nil)
var _ TypeDefinition = (*EnumDefinition)(nil)
var _ TypeDefinition = (*InputObjectDefinition)(nil)

// TypeSystemExtension extends a previously defined type. Only object
// extensions exist.
type TypeSystemExtension interface {
	Definition
	IsTypeSystemExtension()
}

var _ TypeSystemExtension = (*ObjectExtension)(nil)

// FieldsNode is any node that owns a list of field definitions.
type FieldsNode interface {
	Node
	GetFields() []*FieldDefinition
}

var _ FieldsNode = (*ObjectDefinition)(nil)
var _ FieldsNode = (*InterfaceDefinition)(nil)
var _ FieldsNode = (*ObjectExtension)(nil)

// Document is the parse result: definitions in source order.
type Document struct {
	Definitions []Definition    `json:"definitions"`
	Loc         errors.Location `json:"loc"`
}

func (d *Document) GetKind() string {
	return kinds.Document
}

func (d *Document) Location() errors.Location {
	return d.Loc
}

func (d *Document) Operations() []*OperationDefinition {
	var operations []*OperationDefinition
	for _, definition := range d.Definitions {
		if o, ok := definition.(*OperationDefinition); ok {
			operations = append(operations, o)
		}
	}
	return operations
}

func (d *Document) Fragments() []*FragmentDefinition {
	var fragments []*FragmentDefinition
	for _, definition := range d.Definitions {
		if f, ok := definition.(*FragmentDefinition); ok {
			fragments = append(fragments, f)
		}
	}
	return fragments
}

func (d *Document) TypeDefinitions() []TypeDefinition {
	var types []TypeDefinition
	for _, definition := range d.Definitions {
		if t, ok := definition.(TypeDefinition); ok {
			types = append(types, t)
		}
	}
	return types
}

func (d *Document) Extensions() []*ObjectExtension {
	var extensions []*ObjectExtension
	for _, definition := range d.Definitions {
		if e, ok := definition.(*ObjectExtension); ok {
			extensions = append(extensions, e)
		}
	}
	return extensions
}
