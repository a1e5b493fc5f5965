// Package codegen turns a normalized IDL into Go binding source: type
// declarations, discriminator-framed codecs for accounts, instructions,
// and events, and an aggregating program unit.
//
// Generators build an explicit jennifer declaration tree; rendering that
// tree to text is the last, isolated step (see emitter.go).
package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// Import paths referenced by generated code.
const (
	pkgSolana = "github.com/gagliardetto/solana-go"
	pkgBinary = "github.com/gagliardetto/binary"
)

const fileHeader = "Code generated by idlgen. DO NOT EDIT."

// Generator is the shared state of every unit generator: the schema, the
// output package name, the jennifer file under construction, and the
// read-only lookups built once before any declaration is walked.
type Generator struct {
	IDL         *idl.IDL
	PackageName string
	File        *jen.File

	// tags maps entity kind/name to the resolved 8-byte discriminator,
	// built once before generation (explicit value or positional fallback).
	tags *TagSet

	// layouts is the fixed-layout registry for bytemuck types.
	layouts *LayoutRegistry

	// enums classifies every named enum so field codecs know whether a
	// defined reference encodes through reflection or a variant dispatcher.
	enums map[string]enumClass
}

// enumClass distinguishes data-less enums, which map to integer constants,
// from data-carrying ones, which map to a variant interface.
type enumClass int

const (
	enumNone enumClass = iota
	enumSimple
	enumComplex
)

// recordPayload reports whether a by-name payload resolves to a struct
// declaration. Framed encode/decode wrappers exist only for records; sum
// types use their variant dispatchers, and a name the types list never
// declares passes through unreferenced.
func (g *Generator) recordPayload(name string) bool {
	td, ok := g.IDL.TypeByName(name)
	return ok && td.Type.Kind == "struct"
}

func classifyEnums(schema *idl.IDL) map[string]enumClass {
	enums := make(map[string]enumClass)
	for _, td := range schema.Types {
		if td.Type.Kind != "enum" {
			continue
		}
		class := enumSimple
		for _, v := range td.Type.Variants {
			if len(v.Fields) > 0 || len(v.Tuple) > 0 {
				class = enumComplex
				break
			}
		}
		enums[td.Name] = class
	}
	return enums
}

// NewGenerator creates a generator for one output unit.
func NewGenerator(schema *idl.IDL, packageName string, tags *TagSet, layouts *LayoutRegistry) *Generator {
	f := jen.NewFile(packageName)
	f.HeaderComment(fileHeader)
	f.ImportAlias(pkgBinary, "bin")
	f.ImportName(pkgSolana, "solana")
	return &Generator{
		IDL:         schema,
		PackageName: packageName,
		File:        f,
		tags:        tags,
		layouts:     layouts,
		enums:       classifyEnums(schema),
	}
}

// AddDocs writes doc comment lines above the next declaration.
func (g *Generator) AddDocs(docs []string) {
	for _, doc := range FormatDocs(docs) {
		g.File.Comment(doc)
	}
}

// FormatDocs trims documentation lines and drops empties.
func FormatDocs(docs []string) []string {
	if len(docs) == 0 {
		return nil
	}
	formatted := make([]string, 0, len(docs))
	for _, doc := range docs {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}
		formatted = append(formatted, doc)
	}
	return formatted
}

// docsOn attaches doc comments to a statement.
func docsOn(stmt *jen.Statement, docs []string) *jen.Statement {
	out := jen.Empty()
	for _, doc := range FormatDocs(docs) {
		out.Comment(doc).Line()
	}
	return out.Add(stmt)
}
