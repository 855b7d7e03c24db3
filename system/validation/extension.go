package validation

import (
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/ast"
)

// ValidateObjectExtension requires at least one of directives, interfaces
// or a field block.
func ValidateObjectExtension(ext *ast.ObjectExtension) error {
	if ext.Directives == nil && ext.Interfaces == nil && ext.Fields == nil {
		return errors.NewValidationError("Object Extension must have at least one of the following: Directive, Interface, or Field")
	}
	return nil
}

// ValidateExtension checks ext against the object it extends. A nil
// original means no such object exists.
func ValidateExtension(ext *ast.ObjectExtension, original *ast.ObjectDefinition) error {
	if original == nil {
		return errors.NewValidationError("Invalid Object Extension %[1]s: No type of name %[1]s in schema", ext.Name.Name)
	}
	if conflicts := ConflictingFields(ext, original); len(conflicts) > 0 {
		return errors.NewValidationError("Invalid Extension: Cannot redefine field(s) %s", strings.Join(conflicts, ", "))
	}
	return nil
}

// ConflictingFields returns the field names present in both nodes, in the
// order they appear in ext. Only names are compared.
func ConflictingFields(ext, original ast.FieldsNode) []string {
	existing := make(map[string]struct{}, len(original.GetFields()))
	for _, f := range original.GetFields() {
		existing[f.Name.Name] = struct{}{}
	}
	var conflicts []string
	for _, f := range ext.GetFields() {
		if _, ok := existing[f.Name.Name]; ok {
			conflicts = append(conflicts, f.Name.Name)
		}
	}
	return conflicts
}
