package codegen

import (
	"strings"

	"github.com/mettadata/solana-idl-codegen/internal/errors"
	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// Artifacts holds the rendered source of the six output units.
type Artifacts struct {
	Types        string
	Accounts     string
	Instructions string
	Errors       string
	Events       string
	Program      string
}

// Files maps output filename to rendered source, in the layout the
// generated package is written to disk with.
func (a *Artifacts) Files() map[string]string {
	return map[string]string{
		"types.go":        a.Types,
		"accounts.go":     a.Accounts,
		"instructions.go": a.Instructions,
		"errors.go":       a.Errors,
		"events.go":       a.Events,
		"program.go":      a.Program,
	}
}

// Emit generates all six units of the bindings package for a normalized
// schema. Discriminators and fixed layouts are resolved once up front so
// every unit agrees on them. A unit with no declarations still renders,
// with a marker comment, so the output package shape is stable.
func Emit(schema *idl.IDL, packageName string) (*Artifacts, error) {
	if packageName == "" {
		packageName = ToSnakeCase(schema.GetName())
	}
	tags := ResolveTags(schema)
	layouts := BuildLayoutRegistry(schema)

	render := func(unit string, build func(*Generator)) (string, error) {
		g := NewGenerator(schema, packageName, tags, layouts)
		build(g)
		var sb strings.Builder
		if err := g.File.Render(&sb); err != nil {
			return "", errors.Newf(errors.ErrCodeCodegenAssembly,
				"failed to assemble %s unit", unit).
				WithCause(err).
				WithDetails(map[string]any{"unit": unit})
		}
		return sb.String(), nil
	}

	var arts Artifacts
	var err error
	if arts.Types, err = render("types", (*Generator).GenerateTypes); err != nil {
		return nil, err
	}
	if arts.Accounts, err = render("accounts", (*Generator).GenerateAccounts); err != nil {
		return nil, err
	}
	if arts.Instructions, err = render("instructions", (*Generator).GenerateInstructions); err != nil {
		return nil, err
	}
	if arts.Errors, err = render("errors", (*Generator).GenerateErrors); err != nil {
		return nil, err
	}
	if arts.Events, err = render("events", (*Generator).GenerateEvents); err != nil {
		return nil, err
	}
	if arts.Program, err = render("program", (*Generator).GenerateProgram); err != nil {
		return nil, err
	}
	return &arts, nil
}
