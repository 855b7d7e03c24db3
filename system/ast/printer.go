package ast

import "strings"

const indent = "  "

// Print renders node as GraphQL text. Parsing the output yields a document
// equal to the input apart from locations.
func Print(node Node) string {
	return node.String()
}

func (d *Document) String() string {
	definitions := make([]string, len(d.Definitions))
	for i, definition := range d.Definitions {
		definitions[i] = definition.String()
	}
	return strings.Join(definitions, "\n\n")
}

type printer struct {
	sb strings.Builder
}

func (p *printer) String() string {
	return p.sb.String()
}

func (p *printer) write(s ...string) {
	for _, part := range s {
		p.sb.WriteString(part)
	}
}

// description writes desc on its own line. Block string contents are
// written verbatim.
func (p *printer) description(desc *StringValue, prefix string) {
	if desc == nil {
		return
	}
	p.write(prefix, desc.String(), "\n")
}

func (p *printer) block(lines []string) {
	p.write(" {\n")
	for _, line := range lines {
		p.write(indent, line, "\n")
	}
	p.write("}")
}

func (p *printer) fields(fields []*FieldDefinition) {
	p.write(" {\n")
	for _, f := range fields {
		p.fieldDefinition(f, indent)
		p.write("\n")
	}
	p.write("}")
}

func (p *printer) fieldDefinition(f *FieldDefinition, prefix string) {
	p.description(f.Desc, prefix)
	p.write(prefix, f.signature())
}

func (p *printer) selectionSet(set *SelectionSet, prefix string) {
	p.write("{\n")
	if set != nil {
		for _, selection := range set.Selections {
			p.write(prefix + indent)
			p.selection(selection, prefix+indent)
			p.write("\n")
		}
	}
	p.write(prefix, "}")
}

func (p *printer) selection(selection Selection, prefix string) {
	switch s := selection.(type) {
	case *Field:
		if s.Alias != nil {
			p.write(s.Alias.Name, ": ")
		}
		p.write(s.Name.Name, printArguments(s.Arguments), printDirectives(s.Directives))
		if s.SelectionSet != nil {
			p.write(" ")
			p.selectionSet(s.SelectionSet, prefix)
		}
	case *FragmentSpread:
		p.write(s.String())
	case *InlineFragment:
		p.write("...")
		if s.TypeCondition != nil {
			p.write(" on ", s.TypeCondition.String())
		}
		p.write(printDirectives(s.Directives), " ")
		p.selectionSet(s.SelectionSet, prefix)
	}
}
