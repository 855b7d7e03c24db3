package ast

import (
	"strings"

	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system/kinds"
)

// Directive is an annotation such as @deprecated(reason: "old"). Order is
// preserved as written.
type Directive struct {
	Name *Name           `json:"name"`
	Args []*Argument     `json:"arguments"`
	Loc  errors.Location `json:"loc"`
}

func (d *Directive) GetKind() string {
	return kinds.Directive
}

func (d *Directive) Location() errors.Location {
	return d.Loc
}

func (d *Directive) String() string {
	return "@" + d.Name.Name + printArguments(d.Args)
}

type Argument struct {
	Name  *Name           `json:"name"`
	Value Value           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (a *Argument) GetKind() string {
	return kinds.Argument
}

func (a *Argument) Location() errors.Location {
	return a.Loc
}

func (a *Argument) String() string {
	return a.Name.Name + ": " + a.Value.String()
}

func printArguments(args []*Argument) string {
	if len(args) == 0 {
		return ""
	}
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg.String()
	}
	return "(" + strings.Join(out, ", ") + ")"
}

func printDirectives(directives []*Directive) string {
	var sb strings.Builder
	for _, d := range directives {
		sb.WriteString(" ")
		sb.WriteString(d.String())
	}
	return sb.String()
}
