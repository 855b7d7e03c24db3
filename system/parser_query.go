package system

import (
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/token"
)

/**
 * ExecutableDefinition :
 *   - OperationDefinition
 *   - FragmentDefinition
 */
func (p *Parser) parseExecutableDefinition() (ast.ExecutableDefinition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpenBrace {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{Operation: ast.Query, SelectionSet: selectionSet, Loc: tok.Loc}, nil
	}
	switch tok.Keyword() {
	case token.KwQuery:
		return p.parseOperationDefinition()
	case token.KwFragment:
		return p.parseFragmentDefinition()
	}
	return nil, errors.NewBadValueAt(tok.Loc)
}

/**
 * OperationDefinition :
 *  - SelectionSet
 *  - query Name? VariableDefinitions? Directives? SelectionSet
 */
func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	keyword, err := p.next()
	if err != nil {
		return nil, err
	}
	operation := &ast.OperationDefinition{Operation: ast.Query, Loc: keyword.Loc}
	if p.peekIs(token.Name) {
		if operation.Name, err = p.parseName(); err != nil {
			return nil, err
		}
	}
	if operation.Vars, err = p.parseVariableDefinitions(); err != nil {
		return nil, err
	}
	if operation.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if operation.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	return operation, nil
}

/**
 * VariableDefinitions : ( VariableDefinition+ )
 *
 * VariableDefinition : Variable : Type DefaultValue?
 */
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if _, ok := p.expectOptional(token.OpenParen); !ok {
		return nil, nil
	}
	if closing, ok := p.expectOptional(token.CloseParen); ok {
		return nil, errors.NewArgumentEmpty(closing.Loc)
	}
	var vars []*ast.VariableDefinition
	for {
		variable, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		definition := &ast.VariableDefinition{Var: variable, Type: t, Loc: variable.Loc}
		if _, ok := p.expectOptional(token.Equals); ok {
			if definition.DefaultValue, err = p.parseValue(); err != nil {
				return nil, err
			}
		}
		vars = append(vars, definition)
		if _, ok := p.expectOptional(token.CloseParen); ok {
			return vars, nil
		}
	}
}

/**
 * Variable : $ Name
 */
func (p *Parser) parseVariable() (*ast.Variable, error) {
	dollar, err := p.expect(token.Dollar)
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name, Loc: dollar.Loc}, nil
}

/**
 * SelectionSet : { Selection* }
 */
func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	open, err := p.expect(token.OpenBrace)
	if err != nil {
		return nil, err
	}
	selectionSet := &ast.SelectionSet{Selections: []ast.Selection{}, Loc: open.Loc}
	for {
		if _, ok := p.expectOptional(token.CloseBrace); ok {
			return selectionSet, nil
		}
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selectionSet.Selections = append(selectionSet.Selections, selection)
	}
}

/**
 * Selection :
 *   - Field
 *   - FragmentSpread
 *   - InlineFragment
 */
func (p *Parser) parseSelection() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Name:
		return p.parseField()
	case token.Spread:
		return p.parseFragment()
	}
	return nil, errors.NewUnexpectedToken(tok.Loc, token.Name.Display()+" or "+token.Spread.Display(), tok.String())
}

/**
 * Field : Alias? Name Arguments? Directives? SelectionSet?
 *
 * Alias : Name :
 */
func (p *Parser) parseField() (*ast.Field, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{Name: name, Loc: name.Loc}
	if _, ok := p.expectOptional(token.Colon); ok {
		field.Alias = name
		if field.Name, err = p.parseName(); err != nil {
			return nil, err
		}
	}
	if field.Arguments, err = p.parseArguments(); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if p.peekIs(token.OpenBrace) {
		if field.SelectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}
	return field, nil
}

/**
 * Covers both FragmentSpread and InlineFragment.
 *
 * FragmentSpread : ... FragmentName Directives?
 *
 * InlineFragment : ... TypeCondition? Directives? SelectionSet
 */
func (p *Parser) parseFragment() (ast.Selection, error) {
	spread, err := p.expect(token.Spread)
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Kind == token.Name && tok.Keyword() == token.KwOn:
		p.peeked = false
		typeCondition, err := p.parseNamed()
		if err != nil {
			return nil, err
		}
		return p.parseInlineFragment(spread, typeCondition)
	case tok.Kind == token.At || tok.Kind == token.OpenBrace:
		return p.parseInlineFragment(spread, nil)
	case tok.Kind == token.Name:
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: spread.Loc}, nil
	}
	return nil, errors.NewUnexpectedToken(tok.Loc, token.Name.Display()+" or "+token.At.Display(), tok.String())
}

func (p *Parser) parseInlineFragment(spread token.Token, typeCondition *ast.Named) (*ast.InlineFragment, error) {
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           spread.Loc,
	}, nil
}

/**
 * FragmentDefinition :
 *   - fragment FragmentName on TypeCondition Directives? SelectionSet
 *
 * TypeCondition : NamedType
 */
func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	keyword, err := p.next()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamed()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           keyword.Loc,
	}, nil
}
