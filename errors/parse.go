package errors

import "fmt"

const (
	notImplementedMessage    = "Parse Error: One or more operations/types specified is not implemented"
	badValueMessage          = "Parse Error: Bad value received. Please check input and try again."
	documentEmptyMessage     = "Parse Error: Document is empty. Cannot parse an empty value"
	argumentEmptyMessage     = "Parse Error: Argument empty on"
	objectEmptyMessage       = "Parse Error: Object empty on"
	unexpectedTokenMessage   = "Parse Error: Unexpected token on"
	unexpectedKeywordMessage = "Parse Error: Unexpected keyword on"
)

type ParseErrorKind int

const (
	BadValue ParseErrorKind = iota
	DocumentEmpty
	ArgumentEmpty
	ObjectEmpty
	EOF
	ParseLexError
	UnexpectedToken
	UnexpectedKeyword
	NotImplemented
)

func (k ParseErrorKind) String() string {
	switch k {
	case BadValue:
		return "BAD_VALUE"
	case DocumentEmpty:
		return "DOCUMENT_EMPTY"
	case ArgumentEmpty:
		return "ARGUMENT_EMPTY"
	case ObjectEmpty:
		return "OBJECT_EMPTY"
	case EOF:
		return "EOF"
	case ParseLexError:
		return "LEX_ERROR"
	case UnexpectedToken:
		return "UNEXPECTED_TOKEN"
	case UnexpectedKeyword:
		return "UNEXPECTED_KEYWORD"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError is a syntactic failure. Loc is meaningful for ArgumentEmpty,
// ObjectEmpty, UnexpectedToken, UnexpectedKeyword, and BadValue when HasLoc
// is set. Lex is set for ParseLexError.
type ParseError struct {
	Kind     ParseErrorKind
	Loc      Location
	HasLoc   bool
	Expected string
	Received string
	Lex      *LexError
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NotImplemented:
		return notImplementedMessage
	case BadValue:
		if e.HasLoc {
			return fmt.Sprintf("%s (%s)", badValueMessage, e.Loc)
		}
		return badValueMessage
	case DocumentEmpty:
		return documentEmptyMessage
	case ArgumentEmpty:
		return locationMessage(argumentEmptyMessage, e.Loc)
	case ObjectEmpty:
		return locationMessage(objectEmptyMessage, e.Loc)
	case ParseLexError:
		if e.Lex != nil {
			return e.Lex.Error()
		}
	case UnexpectedToken:
		return expectedReceived(unexpectedTokenMessage, e.Loc, e.Expected, e.Received)
	case UnexpectedKeyword:
		return expectedReceived(unexpectedKeywordMessage, e.Loc, e.Expected, e.Received)
	}
	return eofMessage
}

func (e *ParseError) Unwrap() error {
	if e.Lex == nil {
		return nil
	}
	return e.Lex
}

func (e *ParseError) Location() (Location, bool) {
	switch e.Kind {
	case ArgumentEmpty, ObjectEmpty, UnexpectedToken, UnexpectedKeyword:
		return e.Loc, true
	case BadValue:
		return e.Loc, e.HasLoc
	case ParseLexError:
		if e.Lex != nil {
			return e.Lex.Location()
		}
	}
	return Location{}, false
}

func expectedReceived(msg string, loc Location, expected, received string) string {
	return fmt.Sprintf("%s: Expected \"%s\", but found \"%s\"", locationMessage(msg, loc), expected, received)
}

func NewBadValue() *ParseError {
	return &ParseError{Kind: BadValue}
}

// NewBadValueAt reports a bad value at the offending token.
func NewBadValueAt(loc Location) *ParseError {
	return &ParseError{Kind: BadValue, Loc: loc, HasLoc: true}
}

func NewDocumentEmpty() *ParseError {
	return &ParseError{Kind: DocumentEmpty}
}

func NewArgumentEmpty(loc Location) *ParseError {
	return &ParseError{Kind: ArgumentEmpty, Loc: loc}
}

func NewObjectEmpty(loc Location) *ParseError {
	return &ParseError{Kind: ObjectEmpty, Loc: loc}
}

func NewEOF() *ParseError {
	return &ParseError{Kind: EOF}
}

func NewNotImplemented() *ParseError {
	return &ParseError{Kind: NotImplemented}
}

func NewUnexpectedToken(loc Location, expected, received string) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Loc: loc, Expected: expected, Received: received}
}

func NewUnexpectedKeyword(loc Location, expected, received string) *ParseError {
	return &ParseError{Kind: UnexpectedKeyword, Loc: loc, Expected: expected, Received: received}
}

// FromLexError wraps a lexer failure.
func FromLexError(err *LexError) *ParseError {
	if err.Kind == LexEOF {
		return NewEOF()
	}
	return &ParseError{Kind: ParseLexError, Lex: err}
}
