package system

import (
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/shyptr/gqldb/system/token"
)

/**
 * TypeSystemDefinition :
 *   - SchemaDefinition
 *   - TypeDefinition
 *
 * TypeDefinition :
 *   - ScalarTypeDefinition
 *   - ObjectTypeDefinition
 *   - InterfaceTypeDefinition
 *   - UnionTypeDefinition
 *   - EnumTypeDefinition
 *   - InputObjectTypeDefinition
 */
func (p *Parser) parseTypeSystemDefinition(desc *ast.StringValue) (ast.TypeSystemDefinition, error) {
	keyword, err := p.next()
	if err != nil {
		return nil, err
	}
	switch keyword.Keyword() {
	case token.KwType:
		return p.parseObjectDefinition(desc)
	case token.KwInterface:
		return p.parseInterfaceDefinition(desc)
	case token.KwEnum:
		return p.parseEnumDefinition(desc)
	case token.KwUnion:
		return p.parseUnionDefinition(desc)
	case token.KwInput:
		return p.parseInputObjectDefinition(desc)
	case token.KwScalar:
		return p.parseScalarDefinition(desc)
	case token.KwSchema:
		return p.parseSchemaDefinition(desc, keyword)
	}
	return nil, errors.NewBadValueAt(keyword.Loc)
}

/**
 * SchemaDefinition : schema Directives? { OperationTypeDefinition+ }
 *
 * OperationTypeDefinition : OperationType : NamedType
 */
func (p *Parser) parseSchemaDefinition(desc *ast.StringValue, keyword token.Token) (*ast.SchemaDefinition, error) {
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.OpenBrace)
	if err != nil {
		return nil, err
	}
	var operationTypes []*ast.OperationTypeDefinition
	for {
		if _, ok := p.expectOptional(token.CloseBrace); ok {
			break
		}
		tok, err := p.expect(token.Name)
		if err != nil {
			return nil, err
		}
		var operation ast.OperationType
		switch tok.Keyword() {
		case token.KwQuery:
			operation = ast.Query
		case token.KwMutation:
			operation = ast.Mutation
		case token.KwSubscription:
			operation = ast.Subscription
		default:
			return nil, errors.NewUnexpectedKeyword(tok.Loc, "query, mutation or subscription", tok.Value)
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		named, err := p.parseNamed()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, &ast.OperationTypeDefinition{Operation: operation, Type: named, Loc: tok.Loc})
	}
	if len(operationTypes) == 0 {
		return nil, errors.NewObjectEmpty(open.Loc)
	}
	return &ast.SchemaDefinition{
		Desc:           desc,
		Directives:     directives,
		OperationTypes: operationTypes,
		Loc:            keyword.Loc,
	}, nil
}

/**
 * ObjectTypeDefinition :
 *   Description? type Name ImplementsInterfaces? Directives? FieldsDefinition
 */
func (p *Parser) parseObjectDefinition(desc *ast.StringValue) (*ast.ObjectDefinition, error) {
	nameTok, err := p.next()
	if err != nil {
		return nil, err
	}
	if _, err := ast.NewName(nameTok); err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return ast.NewObjectDefinition(nameTok, desc, interfaces, directives, fields)
}

/**
 * ImplementsInterfaces :
 *   - implements `&`? NamedType
 *   - ImplementsInterfaces & NamedType
 */
func (p *Parser) parseImplementsInterfaces() ([]*ast.Named, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Name {
		return nil, nil
	}
	if tok.Keyword() != token.KwImplements {
		return nil, errors.NewUnexpectedKeyword(tok.Loc, token.IMPLEMENTS, tok.Value)
	}
	p.peeked = false
	p.expectOptional(token.Amp)
	var interfaces []*ast.Named
	for {
		named, err := p.parseNamed()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, named)
		if _, ok := p.expectOptional(token.Amp); !ok {
			return interfaces, nil
		}
	}
}

/**
 * FieldsDefinition : { FieldDefinition* }
 */
func (p *Parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if _, err := p.expect(token.OpenBrace); err != nil {
		return nil, err
	}
	fields := []*ast.FieldDefinition{}
	for {
		if _, ok := p.expectOptional(token.CloseBrace); ok {
			return fields, nil
		}
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

/**
 * FieldDefinition :
 *   - Description? Name ArgumentsDefinition? : Type Directives?
 */
func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgumentDefinitions()
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
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.FieldDefinition{
		Desc:       desc,
		Name:       name,
		Args:       args,
		Type:       t,
		Directives: directives,
		Loc:        name.Loc,
	}, nil
}

/**
 * ArgumentsDefinition : ( InputValueDefinition+ )
 */
func (p *Parser) parseArgumentDefinitions() ([]*ast.InputValueDefinition, error) {
	if _, ok := p.expectOptional(token.OpenParen); !ok {
		return nil, nil
	}
	if closing, ok := p.expectOptional(token.CloseParen); ok {
		return nil, errors.NewArgumentEmpty(closing.Loc)
	}
	var args []*ast.InputValueDefinition
	for {
		arg, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if _, ok := p.expectOptional(token.CloseParen); ok {
			return args, nil
		}
	}
}

/**
 * InputValueDefinition :
 *   - Description? Name : Type DefaultValue? Directives?
 */
func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
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
	var defaultValue ast.Value
	if _, ok := p.expectOptional(token.Equals); ok {
		if defaultValue, err = p.parseValue(); err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.InputValueDefinition{
		Desc:         desc,
		Name:         name,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          name.Loc,
	}, nil
}

/**
 * InterfaceTypeDefinition :
 *   - Description? interface Name Directives? FieldsDefinition
 */
func (p *Parser) parseInterfaceDefinition(desc *ast.StringValue) (*ast.InterfaceDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceDefinition{
		Desc:       desc,
		Name:       name,
		Directives: directives,
		Fields:     fields,
		Loc:        name.Loc,
	}, nil
}

/**
 * EnumTypeDefinition :
 *   - Description? enum Name Directives? EnumValuesDefinition
 *
 * EnumValuesDefinition : { EnumValueDefinition+ }
 *
 * EnumValueDefinition : Description? EnumValue Directives?
 *
 * EnumValue : Name but not `true`, `false` or `null`
 */
func (p *Parser) parseEnumDefinition(desc *ast.StringValue) (*ast.EnumDefinition, error) {
	name, err := p.parseEnumName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.OpenBrace)
	if err != nil {
		return nil, err
	}
	var values []*ast.EnumValueDefinition
	for {
		if _, ok := p.expectOptional(token.CloseBrace); ok {
			break
		}
		valueDesc, err := p.parseDescription()
		if err != nil {
			return nil, err
		}
		valueName, err := p.parseEnumName()
		if err != nil {
			return nil, err
		}
		valueDirectives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		values = append(values, &ast.EnumValueDefinition{
			Desc:       valueDesc,
			Name:       valueName,
			Directives: valueDirectives,
			Loc:        valueName.Loc,
		})
	}
	if len(values) == 0 {
		return nil, errors.NewObjectEmpty(open.Loc)
	}
	return &ast.EnumDefinition{
		Desc:       desc,
		Name:       name,
		Directives: directives,
		Values:     values,
		Loc:        name.Loc,
	}, nil
}

func (p *Parser) parseEnumName() (*ast.Name, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Keyword().IsLiteral() {
		return nil, errors.NewBadValueAt(tok.Loc)
	}
	return ast.NewName(tok)
}

/**
 * UnionTypeDefinition : Description? union Name Directives? = UnionMemberTypes
 *
 * UnionMemberTypes :
 *   - `|`? NamedType
 *   - UnionMemberTypes | NamedType
 */
func (p *Parser) parseUnionDefinition(desc *ast.StringValue) (*ast.UnionDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}
	p.expectOptional(token.Pipe)
	var types []*ast.Named
	for {
		member, err := p.parseNamed()
		if err != nil {
			return nil, err
		}
		types = append(types, member)
		if _, ok := p.expectOptional(token.Pipe); !ok {
			break
		}
	}
	return &ast.UnionDefinition{
		Desc:       desc,
		Name:       name,
		Directives: directives,
		Types:      types,
		Loc:        name.Loc,
	}, nil
}

/**
 * InputObjectTypeDefinition :
 *   - Description? input Name Directives? InputFieldsDefinition
 *
 * InputFieldsDefinition : { InputValueDefinition+ }
 */
func (p *Parser) parseInputObjectDefinition(desc *ast.StringValue) (*ast.InputObjectDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.OpenBrace)
	if err != nil {
		return nil, err
	}
	var fields []*ast.InputValueDefinition
	for {
		if _, ok := p.expectOptional(token.CloseBrace); ok {
			break
		}
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return ast.NewInputObjectDefinition(name, desc, directives, fields, open.Loc)
}

/**
 * ScalarTypeDefinition : Description? scalar Name Directives?
 */
func (p *Parser) parseScalarDefinition(desc *ast.StringValue) (*ast.ScalarDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.ScalarDefinition{
		Desc:       desc,
		Name:       name,
		Directives: directives,
		Loc:        name.Loc,
	}, nil
}

/**
 * ObjectTypeExtension :
 *   - extend type Name ImplementsInterfaces? Directives? FieldsDefinition?
 */
func (p *Parser) parseObjectExtension(desc *ast.StringValue) (*ast.ObjectExtension, error) {
	extend, err := p.next()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword(token.TYPE); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	var fields []*ast.FieldDefinition
	if p.peekIs(token.OpenBrace) {
		if fields, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	return &ast.ObjectExtension{
		Desc:       desc,
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
		Loc:        extend.Loc,
	}, nil
}
