package errors

import "fmt"

const (
	eofMessage                 = "Parse Error: Encountered End of File unexpectedly"
	unmatchedQuoteMessage      = "Parse Error: Unmatched quote found on"
	unknownCharacterMessage    = "Parse Error: Unknown character found on"
	unexpectedCharacterMessage = "Parse Error: Unexpected character found on"
	unableToConvertMessage     = "Parse Error: Unable to convert value at"
)

type LexErrorKind int

const (
	// UnmatchedQuote: a string was opened and never closed.
	UnmatchedQuote LexErrorKind = iota
	// UnknownCharacter: the character is not part of the grammar.
	UnknownCharacter
	// UnexpectedCharacter: a valid character in an invalid order, such as `..`.
	UnexpectedCharacter
	// UnableToConvert: a numeric literal could not be converted.
	UnableToConvert
	LexEOF
)

func (k LexErrorKind) String() string {
	switch k {
	case UnmatchedQuote:
		return "UNMATCHED_QUOTE"
	case UnknownCharacter:
		return "UNKNOWN_CHARACTER"
	case UnexpectedCharacter:
		return "UNEXPECTED_CHARACTER"
	case UnableToConvert:
		return "UNABLE_TO_CONVERT"
	case LexEOF:
		return "EOF"
	}
	return fmt.Sprintf("LexErrorKind(%d)", int(k))
}

// LexError is a lexical failure. Expected names the numeric kind for
// UnableToConvert and is empty otherwise.
type LexError struct {
	Kind     LexErrorKind
	Loc      Location
	Expected string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnmatchedQuote:
		return locationMessage(unmatchedQuoteMessage, e.Loc)
	case UnknownCharacter:
		return locationMessage(unknownCharacterMessage, e.Loc)
	case UnexpectedCharacter:
		return locationMessage(unexpectedCharacterMessage, e.Loc)
	case UnableToConvert:
		return fmt.Sprintf("%s: Expected one of %s", locationMessage(unableToConvertMessage, e.Loc), e.Expected)
	}
	return eofMessage
}

func (e *LexError) Location() (Location, bool) {
	return e.Loc, e.Kind != LexEOF
}

func NewUnmatchedQuote(loc Location) *LexError {
	return &LexError{Kind: UnmatchedQuote, Loc: loc}
}

func NewUnknownCharacter(loc Location) *LexError {
	return &LexError{Kind: UnknownCharacter, Loc: loc}
}

func NewUnexpectedCharacter(loc Location) *LexError {
	return &LexError{Kind: UnexpectedCharacter, Loc: loc}
}

func NewUnableToConvert(loc Location, expected string) *LexError {
	return &LexError{Kind: UnableToConvert, Loc: loc, Expected: expected}
}
