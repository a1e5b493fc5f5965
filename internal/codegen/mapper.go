package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// scalarKind classifies a scalar name for codec generation.
type scalarKind int

const (
	scalarUnknown scalarKind = iota
	scalarUint
	scalarInt
	scalarFloat
	scalarBool
	scalarString
	scalarBytes
	scalarPubkey
	scalarU128
	scalarI128
)

// scalarInfo is one row of the primitive mapping table.
type scalarInfo struct {
	kind scalarKind
	// size in bytes for fixed-width scalars, 0 for variable-width.
	size int
	// goType emits the Go type expression for this scalar.
	goType func() *jen.Statement
}

// scalarTable maps every scalar spelling the dialects use to its Go type.
// The three pubkey spellings are aliases of the same 32-byte type.
var scalarTable = map[string]scalarInfo{
	"bool": {kind: scalarBool, size: 1, goType: func() *jen.Statement { return jen.Bool() }},
	"u8":   {kind: scalarUint, size: 1, goType: func() *jen.Statement { return jen.Uint8() }},
	"i8":   {kind: scalarInt, size: 1, goType: func() *jen.Statement { return jen.Int8() }},
	"u16":  {kind: scalarUint, size: 2, goType: func() *jen.Statement { return jen.Uint16() }},
	"i16":  {kind: scalarInt, size: 2, goType: func() *jen.Statement { return jen.Int16() }},
	"u32":  {kind: scalarUint, size: 4, goType: func() *jen.Statement { return jen.Uint32() }},
	"i32":  {kind: scalarInt, size: 4, goType: func() *jen.Statement { return jen.Int32() }},
	"u64":  {kind: scalarUint, size: 8, goType: func() *jen.Statement { return jen.Uint64() }},
	"i64":  {kind: scalarInt, size: 8, goType: func() *jen.Statement { return jen.Int64() }},
	"f32":  {kind: scalarFloat, size: 4, goType: func() *jen.Statement { return jen.Float32() }},
	"f64":  {kind: scalarFloat, size: 8, goType: func() *jen.Statement { return jen.Float64() }},
	"u128": {kind: scalarU128, size: 16, goType: func() *jen.Statement { return jen.Qual(pkgBinary, "Uint128") }},
	"i128": {kind: scalarI128, size: 16, goType: func() *jen.Statement { return jen.Qual(pkgBinary, "Int128") }},
	"string": {kind: scalarString, goType: func() *jen.Statement { return jen.String() }},
	"bytes":  {kind: scalarBytes, goType: func() *jen.Statement { return jen.Index().Byte() }},
	"pubkey":    {kind: scalarPubkey, size: 32, goType: func() *jen.Statement { return jen.Qual(pkgSolana, "PublicKey") }},
	"publicKey": {kind: scalarPubkey, size: 32, goType: func() *jen.Statement { return jen.Qual(pkgSolana, "PublicKey") }},
	"Pubkey":    {kind: scalarPubkey, size: 32, goType: func() *jen.Statement { return jen.Qual(pkgSolana, "PublicKey") }},
}

// MapType maps an abstract type expression to a Go type expression.
// Options become pointers, vecs become slices, arrays keep their length,
// and defined references become local named types. Unknown scalar names
// degrade to a local identifier so a missing types entry still produces
// reviewable output.
func MapType(t idl.TypeExpr) *jen.Statement {
	switch {
	case t.Scalar != "":
		if info, ok := scalarTable[t.Scalar]; ok {
			return info.goType()
		}
		return jen.Id(ToPascalCase(t.Scalar))
	case t.Vec != nil:
		return jen.Index().Add(MapType(*t.Vec))
	case t.Option != nil:
		return jen.Op("*").Add(MapType(*t.Option))
	case t.Array != nil:
		return jen.Index(jen.Lit(t.Array.Len)).Add(MapType(t.Array.Elem))
	case t.Defined != "":
		return jen.Id(ToPascalCase(t.Defined))
	}
	return jen.Id("interface{}")
}

// isPubkey reports whether a type expression is one of the pubkey scalar
// spellings.
func isPubkey(t idl.TypeExpr) bool {
	info, ok := scalarTable[t.Scalar]
	return ok && info.kind == scalarPubkey
}
