package system

import (
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/token"
)

// Lexer turns source text into tokens on demand. The first token is always
// Start and the last is End; after End or the first error, Next returns
// io.EOF.
type Lexer struct {
	input   string
	pos     int
	line    int
	col     int
	started bool
	done    bool
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

func (l *Lexer) location() errors.Location {
	return errors.NewLocation(l.pos, l.line, l.col)
}

// Next returns the next token. Lexical failures are *errors.LexError.
func (l *Lexer) Next() (token.Token, error) {
	if l.done {
		return token.Token{}, io.EOF
	}
	if !l.started {
		l.started = true
		return token.Token{Kind: token.Start}, nil
	}
	tok, err := l.scan()
	if err != nil {
		l.done = true
		return token.Token{}, err
	}
	if tok.Kind == token.End {
		l.done = true
	}
	return tok, nil
}

// All ranges over the remaining tokens. Iteration stops after End or
// after yielding the first error.
func (l *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize lexes the whole input, Start and End included.
func Tokenize(input string) ([]token.Token, error) {
	var tokens []token.Token
	for tok, err := range NewLexer(input).All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *Lexer) scan() (token.Token, *errors.LexError) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == ',' || c == '\r':
			l.pos++
			l.col++
		case c == '\n':
			l.pos++
			l.line++
			l.col = 1
		case c == '#':
			end := strings.IndexByte(l.input[l.pos:], '\n')
			if end < 0 {
				end = len(l.input) - l.pos
			}
			l.advance(l.pos + end)
		case c == '"':
			return l.scanString()
		case c == '.':
			return l.scanSpread()
		case isLetter(c):
			return l.scanName(), nil
		case isDigit(c) || c == '-':
			return l.scanNumber()
		default:
			kind, ok := token.Punctuator(c)
			if !ok {
				return token.Token{}, errors.NewUnknownCharacter(l.location())
			}
			tok := token.Token{Kind: kind, Loc: l.location()}
			l.pos++
			l.col++
			return tok, nil
		}
	}
	return token.Token{Kind: token.End}, nil
}

// advance moves to end on the current line.
func (l *Lexer) advance(end int) {
	l.col += utf8.RuneCountInString(l.input[l.pos:end])
	l.pos = end
}

// advanceLines moves to end, counting any newlines on the way.
func (l *Lexer) advanceLines(end int) {
	segment := l.input[l.pos:end]
	if n := strings.Count(segment, "\n"); n > 0 {
		l.line += n
		l.col = 1 + utf8.RuneCountInString(segment[strings.LastIndexByte(segment, '\n')+1:])
	} else {
		l.col += utf8.RuneCountInString(segment)
	}
	l.pos = end
}

func (l *Lexer) scanSpread() (token.Token, *errors.LexError) {
	if !strings.HasPrefix(l.input[l.pos:], "...") {
		return token.Token{}, errors.NewUnexpectedCharacter(l.location())
	}
	tok := token.Token{Kind: token.Spread, Loc: l.location()}
	l.advance(l.pos + 3)
	return tok, nil
}

func (l *Lexer) scanName() token.Token {
	loc := l.location()
	end := l.pos + 1
	for end < len(l.input) && isNameContinue(l.input[end]) {
		end++
	}
	tok := token.Token{Kind: token.Name, Loc: loc, Value: l.input[l.pos:end]}
	l.advance(end)
	return tok
}

// scanNumber matches -?\d+\.\d+ before -?\d+.
func (l *Lexer) scanNumber() (token.Token, *errors.LexError) {
	loc := l.location()
	i := l.pos
	if l.input[i] == '-' {
		i++
	}
	digits := i
	for i < len(l.input) && isDigit(l.input[i]) {
		i++
	}
	if i == digits {
		return token.Token{}, errors.NewUnableToConvert(loc, "Int or Float")
	}
	if i+1 < len(l.input) && l.input[i] == '.' && isDigit(l.input[i+1]) {
		end := i + 1
		for end < len(l.input) && isDigit(l.input[end]) {
			end++
		}
		f, err := strconv.ParseFloat(l.input[l.pos:end], 64)
		if err != nil {
			return token.Token{}, errors.NewUnableToConvert(loc, "Float")
		}
		l.advance(end)
		return token.Token{Kind: token.Float, Loc: loc, Float: f}, nil
	}
	n, err := strconv.ParseInt(l.input[l.pos:i], 10, 64)
	if err != nil {
		return token.Token{}, errors.NewUnableToConvert(loc, "Int")
	}
	l.advance(i)
	return token.Token{Kind: token.Int, Loc: loc, Int: n}, nil
}

func (l *Lexer) scanString() (token.Token, *errors.LexError) {
	if strings.HasPrefix(l.input[l.pos:], `"""`) {
		return l.scanBlockString()
	}
	loc := l.location()
	for i := l.pos + 1; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			i++
		case '\n':
			return token.Token{}, unmatchedQuote(loc)
		case '"':
			tok := token.Token{Kind: token.Str, Loc: loc, Value: l.input[l.pos+1 : i]}
			l.advance(i + 1)
			return tok, nil
		}
	}
	return token.Token{}, unmatchedQuote(loc)
}

func (l *Lexer) scanBlockString() (token.Token, *errors.LexError) {
	loc := l.location()
	for i := l.pos + 3; i < len(l.input); i++ {
		if l.input[i] == '\\' {
			i++
			continue
		}
		if strings.HasPrefix(l.input[i:], `"""`) {
			tok := token.Token{Kind: token.BlockStr, Loc: loc, Value: l.input[l.pos+3 : i]}
			l.advanceLines(i + 3)
			return tok, nil
		}
	}
	return token.Token{}, unmatchedQuote(loc)
}

// unmatchedQuote points at the character after the opening quote.
func unmatchedQuote(quote errors.Location) *errors.LexError {
	return errors.NewUnmatchedQuote(errors.NewLocation(quote.Offset+1, quote.Line, quote.Column+1))
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameContinue(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
