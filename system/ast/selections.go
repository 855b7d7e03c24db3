package ast

import (
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

// OperationDefinition is a query, named or anonymous.
//
//	query Hero($episode: Episode = JEDI) {
//	  hero(episode: $episode) { name }
//	}
type OperationDefinition struct {
	Operation    OperationType         `json:"operation"`
	Name         *Name                 `json:"name"`
	Vars         []*VariableDefinition `json:"variableDefinitions"`
	Directives   []*Directive          `json:"directives"`
	SelectionSet *SelectionSet         `json:"selectionSet"`
	Loc          errors.Location       `json:"loc"`
}

func (o *OperationDefinition) IsDefinition() {}

func (o *OperationDefinition) IsExecutableDefinition() {}

func (o *OperationDefinition) GetKind() string {
	return kinds.OperationDefinition
}

func (o *OperationDefinition) Location() errors.Location {
	return o.Loc
}

func (o *OperationDefinition) String() string {
	p := &printer{}
	if o.Name != nil || len(o.Vars) > 0 || len(o.Directives) > 0 {
		p.write(string(o.Operation))
		if o.Name != nil {
			p.write(" ", o.Name.Name)
		} else if len(o.Vars) > 0 {
			p.write(" ")
		}
		if len(o.Vars) > 0 {
			vars := make([]string, len(o.Vars))
			for i, v := range o.Vars {
				vars[i] = v.String()
			}
			p.write("(", strings.Join(vars, ", "), ")")
		}
		p.write(printDirectives(o.Directives), " ")
	}
	p.selectionSet(o.SelectionSet, "")
	return p.String()
}

type VariableDefinition struct {
	Var          *Variable       `json:"variable"`
	Type         Type            `json:"type"`
	DefaultValue Value           `json:"defaultValue"`
	Loc          errors.Location `json:"loc"`
}

func (v *VariableDefinition) GetKind() string {
	return kinds.VariableDefinition
}

func (v *VariableDefinition) Location() errors.Location {
	return v.Loc
}

func (v *VariableDefinition) String() string {
	s := v.Var.String() + ": " + v.Type.String()
	if v.DefaultValue != nil {
		s += " = " + v.DefaultValue.String()
	}
	return s
}

type SelectionSet struct {
	Selections []Selection     `json:"selections"`
	Loc        errors.Location `json:"loc"`
}

func (s *SelectionSet) GetKind() string {
	return kinds.SelectionSet
}

func (s *SelectionSet) Location() errors.Location {
	return s.Loc
}

func (s *SelectionSet) String() string {
	p := &printer{}
	p.selectionSet(s, "")
	return p.String()
}

type Selection interface {
	Node
	// non-op interface, just to identify the interface that implements Selection
	IsSelection()
}

var _ Selection = (*Field)(nil)
var _ Selection = (*FragmentSpread)(nil)
var _ Selection = (*InlineFragment)(nil)

type Field struct {
	Alias        *Name           `json:"alias"`
	Name         *Name           `json:"name"`
	Arguments    []*Argument     `json:"arguments"`
	Directives   []*Directive    `json:"directives"`
	SelectionSet *SelectionSet   `json:"selectionSet"`
	Loc          errors.Location `json:"loc"`
}

func (f *Field) IsSelection() {}

func (f *Field) GetKind() string {
	return kinds.Field
}

func (f *Field) Location() errors.Location {
	return f.Loc
}

func (f *Field) String() string {
	p := &printer{}
	p.selection(f, "")
	return p.String()
}

// ResponseKey is the alias when present, otherwise the field name.
func (f *Field) ResponseKey() string {
	if f.Alias != nil {
		return f.Alias.Name
	}
	return f.Name.Name
}

// FragmentSpread is `...Name`.
type FragmentSpread struct {
	Name       *Name           `json:"name"`
	Directives []*Directive    `json:"directives"`
	Loc        errors.Location `json:"loc"`
}

func (f *FragmentSpread) IsSelection() {}

func (f *FragmentSpread) GetKind() string {
	return kinds.FragmentSpread
}

func (f *FragmentSpread) Location() errors.Location {
	return f.Loc
}

func (f *FragmentSpread) String() string {
	return "..." + f.Name.Name + printDirectives(f.Directives)
}

// InlineFragment is `... on Type { }`; TypeCondition is nil for the
// anonymous form.
type InlineFragment struct {
	TypeCondition *Named          `json:"typeCondition"`
	Directives    []*Directive    `json:"directives"`
	SelectionSet  *SelectionSet   `json:"selectionSet"`
	Loc           errors.Location `json:"loc"`
}

func (i *InlineFragment) IsSelection() {}

func (i *InlineFragment) GetKind() string {
	return kinds.InlineFragment
}

func (i *InlineFragment) Location() errors.Location {
	return i.Loc
}

func (i *InlineFragment) String() string {
	p := &printer{}
	p.selection(i, "")
	return p.String()
}

type FragmentDefinition struct {
	Name          *Name           `json:"name"`
	TypeCondition *Named          `json:"typeCondition"`
	Directives    []*Directive    `json:"directives"`
	SelectionSet  *SelectionSet   `json:"selectionSet"`
	Loc           errors.Location `json:"loc"`
}

func (f *FragmentDefinition) IsDefinition() {}

func (f *FragmentDefinition) IsExecutableDefinition() {}

func (f *FragmentDefinition) GetKind() string {
	return kinds.FragmentDefinition
}

func (f *FragmentDefinition) Location() errors.Location {
	return f.Loc
}

func (f *FragmentDefinition) String() string {
	p := &printer{}
	p.write("fragment ", f.Name.Name, " on ", f.TypeCondition.String(), printDirectives(f.Directives), " ")
	p.selectionSet(f.SelectionSet, "")
	return p.String()
}
