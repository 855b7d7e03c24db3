package errors

import (
	stderrors "errors"
	"fmt"
)

// GraphQLError is the wire form of an error, sent to clients that speak JSON.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (err *GraphQLError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	return str
}

var _ error = (*GraphQLError)(nil)

func New(format string, arg ...interface{}) *GraphQLError {
	return &GraphQLError{
		Message: fmt.Sprintf(format, arg...),
	}
}

// Located is implemented by errors that point at a position in the source.
type Located interface {
	error
	Location() (Location, bool)
}

var _ Located = (*LexError)(nil)
var _ Located = (*ParseError)(nil)

// FromError converts a lex, parse or validation error into its wire form.
// Any other error keeps its message and gets no location.
func FromError(err error) *GraphQLError {
	if err == nil {
		return nil
	}
	var gqlErr *GraphQLError
	if stderrors.As(err, &gqlErr) {
		return gqlErr
	}
	out := &GraphQLError{Message: err.Error()}
	var located Located
	if stderrors.As(err, &located) {
		if loc, ok := located.Location(); ok {
			out.Locations = []Location{loc}
		}
		out.Extensions = map[string]interface{}{"code": code(located)}
	}
	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) {
		out.Extensions = map[string]interface{}{"code": "VALIDATION"}
	}
	return out
}

func code(err Located) string {
	switch e := err.(type) {
	case *LexError:
		return "LEX_" + e.Kind.String()
	case *ParseError:
		if e.Kind == ParseLexError && e.Lex != nil {
			return "LEX_" + e.Lex.Kind.String()
		}
		return "PARSE_" + e.Kind.String()
	}
	return "UNKNOWN"
}
