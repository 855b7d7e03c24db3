package errors_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shyptr/gqldb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexErrorMessages(t *testing.T) {
	loc := errors.NewLocation(4, 2, 3)
	for _, tc := range []struct {
		err  *errors.LexError
		want string
	}{
		{errors.NewUnmatchedQuote(loc), "Parse Error: Unmatched quote found on line 2, column 3"},
		{errors.NewUnknownCharacter(loc), "Parse Error: Unknown character found on line 2, column 3"},
		{errors.NewUnexpectedCharacter(loc), "Parse Error: Unexpected character found on line 2, column 3"},
		{errors.NewUnableToConvert(loc, "Int"), "Parse Error: Unable to convert value at line 2, column 3: Expected one of Int"},
	} {
		t.Run(tc.err.Kind.String(), func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.want)
			got, ok := tc.err.Location()
			assert.True(t, ok)
			assert.Equal(t, loc, got)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	loc := errors.NewLocation(0, 1, 5)
	for _, tc := range []struct {
		err    *errors.ParseError
		want   string
		hasLoc bool
	}{
		{errors.NewBadValue(), "Parse Error: Bad value received. Please check input and try again.", false},
		{errors.NewBadValueAt(loc), "Parse Error: Bad value received. Please check input and try again. (line 1, column 5)", true},
		{errors.NewDocumentEmpty(), "Parse Error: Document is empty. Cannot parse an empty value", false},
		{errors.NewArgumentEmpty(loc), "Parse Error: Argument empty on line 1, column 5", true},
		{errors.NewObjectEmpty(loc), "Parse Error: Object empty on line 1, column 5", true},
		{errors.NewEOF(), "Parse Error: Encountered End of File unexpectedly", false},
		{errors.NewNotImplemented(), "Parse Error: One or more operations/types specified is not implemented", false},
		{errors.NewUnexpectedToken(loc, "Token<Colon>", "Token<Bang>"), `Parse Error: Unexpected token on line 1, column 5: Expected "Token<Colon>", but found "Token<Bang>"`, true},
		{errors.NewUnexpectedKeyword(loc, "on", "of"), `Parse Error: Unexpected keyword on line 1, column 5: Expected "on", but found "of"`, true},
	} {
		t.Run(tc.err.Kind.String(), func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.want)
			_, ok := tc.err.Location()
			assert.Equal(t, tc.hasLoc, ok)
		})
	}
}

func TestFromLexError(t *testing.T) {
	lexErr := errors.NewUnknownCharacter(errors.NewLocation(2, 1, 3))
	parseErr := errors.FromLexError(lexErr)
	assert.Equal(t, errors.ParseLexError, parseErr.Kind)
	assert.Equal(t, lexErr.Error(), parseErr.Error())
	assert.ErrorIs(t, parseErr, lexErr)

	wrapped := fmt.Errorf("loading schema: %w", parseErr)
	var target *errors.LexError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, errors.UnknownCharacter, target.Kind)

	assert.Equal(t, errors.EOF, errors.FromLexError(&errors.LexError{Kind: errors.LexEOF}).Kind)
}

func TestFromError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, errors.FromError(nil))
	})

	t.Run("parse errors carry a location and a code", func(t *testing.T) {
		gqlErr := errors.FromError(errors.NewObjectEmpty(errors.NewLocation(5, 1, 6)))
		assert.Equal(t, []errors.Location{errors.NewLocation(5, 1, 6)}, gqlErr.Locations)
		assert.Equal(t, "PARSE_OBJECT_EMPTY", gqlErr.Extensions["code"])
		assert.Equal(t, "graphql: Parse Error: Object empty on line 1, column 6 (1:6)", gqlErr.Error())
	})

	t.Run("lexical errors report the lexer code", func(t *testing.T) {
		gqlErr := errors.FromError(errors.FromLexError(errors.NewUnmatchedQuote(errors.NewLocation(1, 1, 2))))
		assert.Equal(t, "LEX_UNMATCHED_QUOTE", gqlErr.Extensions["code"])
		assert.Len(t, gqlErr.Locations, 1)
	})

	t.Run("errors without a location", func(t *testing.T) {
		gqlErr := errors.FromError(errors.NewDocumentEmpty())
		assert.Empty(t, gqlErr.Locations)
		assert.Equal(t, "PARSE_DOCUMENT_EMPTY", gqlErr.Extensions["code"])
	})

	t.Run("validation errors", func(t *testing.T) {
		gqlErr := errors.FromError(errors.NewValidationError("Invalid Extension: Cannot redefine field(s) %s", "id"))
		assert.Equal(t, "VALIDATION", gqlErr.Extensions["code"])
		assert.Equal(t, "Invalid Extension: Cannot redefine field(s) id", gqlErr.Message)
	})

	t.Run("marshals without offsets", func(t *testing.T) {
		b, err := json.Marshal(errors.FromError(errors.NewArgumentEmpty(errors.NewLocation(9, 2, 1))))
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Parse Error: Argument empty on line 2, column 1","locations":[{"line":2,"column":1}],"extensions":{"code":"PARSE_ARGUMENT_EMPTY"}}`, string(b))
	})
}

func TestLocation(t *testing.T) {
	assert.True(t, errors.Location{}.Ignored())
	assert.False(t, errors.NewLocation(0, 1, 1).Ignored())
	assert.True(t, errors.NewLocation(0, 1, 9).Before(errors.NewLocation(3, 2, 1)))
	assert.False(t, errors.NewLocation(3, 2, 1).Before(errors.NewLocation(0, 1, 9)))
}
