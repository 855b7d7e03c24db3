package database

import (
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/validation"
)

// Schema is the set of registered type definitions. It is owned by a single
// goroutine and is never shared.
type Schema struct {
	definition *ast.SchemaDefinition
	types      map[string]ast.TypeDefinition
	order      []string
}

func NewSchema() *Schema {
	return &Schema{types: map[string]ast.TypeDefinition{}}
}

func (s *Schema) clone() *Schema {
	c := &Schema{
		definition: s.definition,
		types:      make(map[string]ast.TypeDefinition, len(s.types)),
		order:      append([]string(nil), s.order...),
	}
	for name, t := range s.types {
		c.types[name] = t
	}
	return c
}

func (s *Schema) Lookup(name string) ast.TypeDefinition {
	return s.types[name]
}

func (s *Schema) Len() int {
	return len(s.types)
}

// Apply adds the type system definitions of doc and merges its object
// extensions. It returns the schema to use from now on; s is left untouched
// when any definition is rejected. changed reports whether doc touched the
// schema at all.
func (s *Schema) Apply(doc *ast.Document) (next *Schema, changed bool, err error) {
	next = s.clone()
	for _, definition := range doc.Definitions {
		switch d := definition.(type) {
		case *ast.SchemaDefinition:
			if next.definition != nil {
				return s, false, errors.NewValidationError("Invalid Schema: schema is already defined")
			}
			next.definition = d
		case ast.TypeDefinition:
			name := d.TypeName()
			if _, ok := next.types[name]; ok {
				return s, false, errors.NewValidationError("Invalid Type %[1]s: type %[1]s is already defined", name)
			}
			next.types[name] = d
			next.order = append(next.order, name)
		case *ast.ObjectExtension:
			if err := next.extend(d); err != nil {
				return s, false, err
			}
		default:
			continue
		}
		changed = true
	}
	if !changed {
		return s, false, nil
	}
	return next, true, nil
}

func (s *Schema) extend(ext *ast.ObjectExtension) error {
	if err := validation.ValidateObjectExtension(ext); err != nil {
		return err
	}
	original, _ := s.types[ext.Name.Name].(*ast.ObjectDefinition)
	if err := validation.ValidateExtension(ext, original); err != nil {
		return err
	}
	merged := *original
	merged.Interfaces = append(append([]*ast.Named(nil), original.Interfaces...), ext.Interfaces...)
	merged.Directives = append(append([]*ast.Directive(nil), original.Directives...), ext.Directives...)
	merged.Fields = append(append([]*ast.FieldDefinition(nil), original.Fields...), ext.Fields...)
	s.types[ext.Name.Name] = &merged
	return nil
}

// Document returns the schema definition, if any, followed by the types in
// registration order.
func (s *Schema) Document() *ast.Document {
	doc := &ast.Document{}
	if s.definition != nil {
		doc.Definitions = append(doc.Definitions, s.definition)
	}
	for _, name := range s.order {
		doc.Definitions = append(doc.Definitions, s.types[name])
	}
	return doc
}

func (s *Schema) String() string {
	return strings.TrimSpace(ast.Print(s.Document()))
}
