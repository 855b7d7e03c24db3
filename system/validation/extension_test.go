package validation_test

import (
	"testing"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func definitions(t *testing.T, source string) (*ast.ObjectDefinition, *ast.ObjectExtension) {
	t.Helper()
	doc, err := system.Parse(source)
	require.NoError(t, err)
	var (
		object    *ast.ObjectDefinition
		extension *ast.ObjectExtension
	)
	for _, definition := range doc.Definitions {
		switch d := definition.(type) {
		case *ast.ObjectDefinition:
			object = d
		case *ast.ObjectExtension:
			extension = d
		}
	}
	require.NotNil(t, extension)
	return object, extension
}

func TestValidateObjectExtension(t *testing.T) {
	t.Run("requires at least one part", func(t *testing.T) {
		err := validation.ValidateObjectExtension(&ast.ObjectExtension{Name: &ast.Name{Name: "User"}})
		require.Error(t, err)
		assert.EqualError(t, err, "Object Extension must have at least one of the following: Directive, Interface, or Field")
		var validationErr *errors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("accepts each part on its own", func(t *testing.T) {
		for _, source := range []string{
			"extend type User @cached",
			"extend type User implements Node",
			"extend type User { email: String }",
			"extend type User {}",
		} {
			_, ext := definitions(t, source)
			assert.NoError(t, validation.ValidateObjectExtension(ext), source)
		}
	})
}

func TestValidateExtension(t *testing.T) {
	t.Run("reports a missing type", func(t *testing.T) {
		_, ext := definitions(t, "extend type Ghost @x")
		err := validation.ValidateExtension(ext, nil)
		assert.EqualError(t, err, "Invalid Object Extension Ghost: No type of name Ghost in schema")
	})

	t.Run("accepts disjoint fields", func(t *testing.T) {
		object, ext := definitions(t, "type User { id: ID } extend type User { email: String }")
		assert.NoError(t, validation.ValidateExtension(ext, object))
	})

	t.Run("rejects redefined fields", func(t *testing.T) {
		object, ext := definitions(t, "type User { foo: String id: ID bar: Int } extend type User { bar: String baz: Int foo(x: Int): Int }")
		err := validation.ValidateExtension(ext, object)
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid Extension: Cannot redefine field(s) bar, foo")
		assert.Contains(t, err.Error(), "foo")
	})

	t.Run("extensions without fields never conflict", func(t *testing.T) {
		object, ext := definitions(t, "type User { id: ID } extend type User implements Node")
		assert.NoError(t, validation.ValidateExtension(ext, object))
	})
}

func TestConflictingFields(t *testing.T) {
	object, ext := definitions(t, "type A { a: Int b: Int } extend type A { c: Int b: String a: [Int] }")
	assert.Equal(t, []string{"b", "a"}, validation.ConflictingFields(ext, object))

	iface := &ast.InterfaceDefinition{Name: &ast.Name{Name: "I"}}
	assert.Empty(t, validation.ConflictingFields(ext, iface))
}
