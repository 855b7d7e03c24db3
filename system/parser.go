package system

import (
	stderrors "errors"
	"io"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/token"
)

// Parser is a recursive descent parser over a Lexer with one token of
// lookahead. A Parser is consumed by Parse.
type Parser struct {
	lexer  *Lexer
	peeked bool
	tok    token.Token
	lexErr error
}

func NewParser(source string) *Parser {
	return &Parser{lexer: NewLexer(source)}
}

// Parse parses source into a Document.
func Parse(source string) (*ast.Document, error) {
	return NewParser(source).Parse()
}

/**
 * Document : Definition+
 */
func (p *Parser) Parse() (*ast.Document, error) {
	if _, err := p.expect(token.Start); err != nil {
		return nil, err
	}
	first, err := p.peek()
	if err != nil {
		return nil, err
	}
	if first.Kind == token.End {
		return nil, errors.NewDocumentEmpty()
	}
	doc := &ast.Document{Loc: first.Loc}
	for {
		if _, ok := p.expectOptional(token.End); ok {
			return doc, nil
		}
		definition, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, definition)
	}
}

func (p *Parser) peek() (token.Token, error) {
	if !p.peeked {
		p.tok, p.lexErr = p.lexer.Next()
		p.peeked = true
	}
	if p.lexErr != nil {
		return token.Token{}, parseErrorOf(p.lexErr)
	}
	return p.tok, nil
}

func (p *Parser) next() (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}
	p.peeked = false
	return tok, nil
}

func parseErrorOf(err error) error {
	if err == io.EOF {
		return errors.NewEOF()
	}
	var lexErr *errors.LexError
	if stderrors.As(err, &lexErr) {
		return errors.FromLexError(lexErr)
	}
	return err
}

// expect consumes the next token, which must be of the given kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, errors.NewUnexpectedToken(tok.Loc, kind.Display(), tok.String())
	}
	return tok, nil
}

// expectOptional consumes the next token only if it is of the given kind.
// A lexical error leaves the stream untouched for the next read to report.
func (p *Parser) expectOptional(kind token.Kind) (token.Token, bool) {
	tok, err := p.peek()
	if err != nil || tok.Kind != kind {
		return token.Token{}, false
	}
	p.peeked = false
	return tok, true
}

// expectKeyword consumes a Name token spelling keyword.
func (p *Parser) expectKeyword(keyword string) (token.Token, error) {
	tok, err := p.expect(token.Name)
	if err != nil {
		return tok, err
	}
	if tok.Value != keyword {
		return tok, errors.NewUnexpectedKeyword(tok.Loc, keyword, tok.Value)
	}
	return tok, nil
}

func (p *Parser) peekIs(kind token.Kind) bool {
	tok, err := p.peek()
	return err == nil && tok.Kind == kind
}

/**
 * Definition :
 *   - ExecutableDefinition
 *   - TypeSystemDefinition
 *   - TypeSystemExtension
 */
func (p *Parser) parseDefinition() (ast.Definition, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Name:
		switch tok.Keyword() {
		case token.KwType, token.KwEnum, token.KwUnion, token.KwInterface, token.KwInput, token.KwScalar, token.KwSchema:
			return p.parseTypeSystemDefinition(desc)
		case token.KwExtend:
			return p.parseObjectExtension(desc)
		case token.KwQuery, token.KwFragment:
			return p.parseExecutableDefinition()
		case token.KwMutation, token.KwSubscription:
			return nil, errors.NewNotImplemented()
		}
		return nil, errors.NewBadValueAt(tok.Loc)
	case token.OpenBrace:
		return p.parseExecutableDefinition()
	}
	return nil, errors.NewUnexpectedToken(tok.Loc, token.Name.Display()+" or "+token.OpenBrace.Display(), tok.String())
}

/**
 * Description : StringValue
 */
func (p *Parser) parseDescription() (*ast.StringValue, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Str && tok.Kind != token.BlockStr {
		return nil, nil
	}
	p.peeked = false
	return ast.NewStringValue(tok)
}

func (p *Parser) parseName() (*ast.Name, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return ast.NewName(tok)
}

/**
 * NamedType : Name
 */
func (p *Parser) parseNamed() (*ast.Named, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Named{Name: name, Loc: name.Loc}, nil
}

/**
 * Type :
 *   - NamedType
 *   - ListType
 *   - NonNullType
 */
func (p *Parser) parseType() (ast.Type, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	var t ast.Type
	switch tok.Kind {
	case token.OpenSquare:
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseSquare); err != nil {
			return nil, err
		}
		t = &ast.List{Type: inner, Loc: tok.Loc}
	case token.Name:
		t = &ast.Named{Name: &ast.Name{Name: tok.Value, Loc: tok.Loc}, Loc: tok.Loc}
	default:
		return nil, errors.NewUnexpectedToken(tok.Loc, token.Name.Display()+" or "+token.OpenSquare.Display(), tok.String())
	}
	if _, ok := p.expectOptional(token.Bang); ok {
		t = &ast.NonNull{Type: t, Loc: tok.Loc}
	}
	return t, nil
}

/**
 * Directives : Directive+
 * Directive : @ Name Arguments?
 */
func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for {
		at, ok := p.expectOptional(token.At)
		if !ok {
			return directives, nil
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		directives = append(directives, &ast.Directive{Name: name, Args: args, Loc: at.Loc})
	}
}

/**
 * Arguments : ( Argument+ )
 * Argument : Name : Value
 */
func (p *Parser) parseArguments() ([]*ast.Argument, error) {
	if _, ok := p.expectOptional(token.OpenParen); !ok {
		return nil, nil
	}
	if closing, ok := p.expectOptional(token.CloseParen); ok {
		return nil, errors.NewArgumentEmpty(closing.Loc)
	}
	var args []*ast.Argument
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Name: name, Value: value, Loc: name.Loc})
		if _, ok := p.expectOptional(token.CloseParen); ok {
			return args, nil
		}
	}
}

/**
 * Value :
 *   - Variable
 *   - IntValue
 *   - FloatValue
 *   - StringValue
 *   - BooleanValue
 *   - NullValue
 *   - EnumValue
 *   - ListValue
 *   - ObjectValue
 */
func (p *Parser) parseValue() (ast.Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Name:
		switch tok.Keyword() {
		case token.KwTrue:
			return &ast.BooleanValue{Value: true, Loc: tok.Loc}, nil
		case token.KwFalse:
			return &ast.BooleanValue{Value: false, Loc: tok.Loc}, nil
		case token.KwNull:
			return &ast.NullValue{Loc: tok.Loc}, nil
		}
		return &ast.EnumValue{Value: tok.Value, Loc: tok.Loc}, nil
	case token.Int:
		return &ast.IntValue{Value: tok.Int, Loc: tok.Loc}, nil
	case token.Float:
		return &ast.FloatValue{Value: tok.Float, Loc: tok.Loc}, nil
	case token.Str, token.BlockStr:
		return ast.NewStringValue(tok)
	case token.Dollar:
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Name: name, Loc: tok.Loc}, nil
	case token.OpenSquare:
		list := &ast.ListValue{Values: []ast.Value{}, Loc: tok.Loc}
		for {
			if _, ok := p.expectOptional(token.CloseSquare); ok {
				return list, nil
			}
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, value)
		}
	case token.OpenBrace:
		object := &ast.ObjectValue{Fields: []*ast.ObjectField{}, Loc: tok.Loc}
		for {
			if _, ok := p.expectOptional(token.CloseBrace); ok {
				return object, nil
			}
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			object.Fields = append(object.Fields, &ast.ObjectField{Name: name, Value: value, Loc: name.Loc})
		}
	}
	return nil, errors.NewUnexpectedToken(tok.Loc, "Value", tok.String())
}
