// Package gqldb parses GraphQL schema and query documents.
//
//	doc, err := gqldb.Parse(`type Query { hero: Character }`)
//
// Errors are *errors.ParseError values carrying the source location; a
// wrapped *errors.LexError reports lexical failures.
package gqldb

import (
	"github.com/shyptr/gqldb/system"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/token"
	"github.com/shyptr/gqldb/system/validation"
)

// Parse parses a complete document.
func Parse(source string) (*ast.Document, error) {
	return system.Parse(source)
}

// MustParse is like Parse but panics on error. Intended for fixtures and
// package level variables.
func MustParse(source string) *ast.Document {
	doc, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return doc
}

// Tokenize lexes source into its tokens, Start and End included.
func Tokenize(source string) ([]token.Token, error) {
	return system.Tokenize(source)
}

// ValidateExtension validates ext on its own and then against original.
func ValidateExtension(ext *ast.ObjectExtension, original *ast.ObjectDefinition) error {
	if err := validation.ValidateObjectExtension(ext); err != nil {
		return err
	}
	return validation.ValidateExtension(ext, original)
}
