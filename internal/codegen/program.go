package codegen

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// GenerateProgram emits the aggregating program unit: program identity,
// declared constants, the shared framing error types, and a unified
// account decoder. Events are deliberately not referenced here; their
// Event-suffixed types keep the event surface independent.
func (g *Generator) GenerateProgram() {
	g.File.Commentf("ProgramName is the name declared by the IDL.")
	g.File.Const().Id("ProgramName").Op("=").Lit(g.IDL.GetName())
	g.File.Commentf("ProgramVersion is the version declared by the IDL.")
	g.File.Const().Id("ProgramVersion").Op("=").Lit(g.IDL.GetVersion())

	if addr := g.IDL.GetAddress(); addr != "" {
		g.File.Comment("ProgramID is the on-chain address of the program.")
		g.File.Var().Id("ProgramID").Op("=").
			Qual(pkgSolana, "MustPublicKeyFromBase58").Call(jen.Lit(addr))
	} else {
		g.File.Comment("ProgramID must be set before building instructions; the IDL")
		g.File.Comment("declares no address.")
		g.File.Var().Id("ProgramID").Qual(pkgSolana, "PublicKey")
	}

	g.generateConstants()
	g.generateFramingErrors()
	g.generateAccountDispatcher()
}

func (g *Generator) generateConstants() {
	if len(g.IDL.Constants) == 0 {
		return
	}
	decls := make([]jen.Code, 0, len(g.IDL.Constants))
	for _, c := range g.IDL.Constants {
		decls = append(decls, jen.Id(FormatTypeName(c.Name)).Op("=").Add(constantLiteral(c)))
	}
	g.File.Comment("Constants declared by the IDL.")
	g.File.Const().Defs(decls...)
}

// constantLiteral renders a declared constant value. IDL constant values
// arrive as strings regardless of type, so numeric and boolean values are
// re-parsed; anything unparseable stays a string literal.
func constantLiteral(c idl.Constant) *jen.Statement {
	raw := c.Value
	switch c.Type.Scalar {
	case "string", "bytes":
		return jen.Lit(strings.Trim(raw, `"`))
	case "bool":
		if b, err := strconv.ParseBool(raw); err == nil {
			return jen.Lit(b)
		}
	case "f32", "f64":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return jen.Lit(f)
		}
	default:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return jen.Lit(int(n))
		}
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return jen.Lit(n)
		}
	}
	return jen.Lit(raw)
}

func (g *Generator) generateFramingErrors() {
	g.File.Comment("PayloadTooShortError reports a payload shorter than its 8-byte tag.")
	g.File.Type().Id("PayloadTooShortError").Struct(
		jen.Id("Expected").Int(),
		jen.Id("Actual").Int(),
	)
	g.File.Func().
		Params(jen.Id("e").Id("PayloadTooShortError")).
		Id("Error").Params().String().
		Block(jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("payload too short: expected at least %d bytes, got %d"),
			jen.Id("e").Dot("Expected"), jen.Id("e").Dot("Actual"),
		)))

	g.File.Comment("DiscriminatorMismatchError reports a tag that does not match the")
	g.File.Comment("declaration being decoded.")
	g.File.Type().Id("DiscriminatorMismatchError").Struct(
		jen.Id("Expected").Index(jen.Lit(8)).Byte(),
		jen.Id("Actual").Index(jen.Lit(8)).Byte(),
	)
	g.File.Func().
		Params(jen.Id("e").Id("DiscriminatorMismatchError")).
		Id("Error").Params().String().
		Block(jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("discriminator mismatch: expected %x, got %x"),
			jen.Id("e").Dot("Expected"), jen.Id("e").Dot("Actual"),
		)))

	g.File.Comment("UnknownDiscriminatorError reports a tag matching no known declaration.")
	g.File.Type().Id("UnknownDiscriminatorError").Struct(
		jen.Id("Discriminator").Index(jen.Lit(8)).Byte(),
	)
	g.File.Func().
		Params(jen.Id("e").Id("UnknownDiscriminatorError")).
		Id("Error").Params().String().
		Block(jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("unknown discriminator %x"),
			jen.Id("e").Dot("Discriminator"),
		)))
}

func (g *Generator) generateAccountDispatcher() {
	// Only accounts with framed wrappers are routable; non-struct payloads
	// publish a tag but no decoder.
	routed := make([]string, 0, len(g.IDL.Accounts))
	for i := range g.IDL.Accounts {
		if g.accountRecord(&g.IDL.Accounts[i]) {
			routed = append(routed, FormatTypeName(g.IDL.Accounts[i].Name))
		}
	}
	if len(routed) == 0 {
		return
	}
	cases := make([]jen.Code, 0, len(routed)+1)
	for _, name := range routed {
		cases = append(cases, jen.Case(jen.Id(name+"Discriminator")).Block(
			jen.Return(jen.Id("Decode"+name+"Account").Call(jen.Id("data"))),
		))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Nil(), jen.Id("UnknownDiscriminatorError").Values(jen.Dict{
			jen.Id("Discriminator"): jen.Id("tag"),
		})),
	))

	g.File.Comment("DecodeAnyAccount routes a framed account payload by its tag.")
	g.File.Func().Id("DecodeAnyAccount").
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Any(), jen.Error()).
		Block(
			jen.If(jen.Len(jen.Id("data")).Op("<").Lit(8)).Block(
				jen.Return(jen.Nil(), jen.Id("PayloadTooShortError").Values(jen.Dict{
					jen.Id("Expected"): jen.Lit(8),
					jen.Id("Actual"):   jen.Len(jen.Id("data")),
				})),
			),
			jen.Var().Id("tag").Index(jen.Lit(8)).Byte(),
			jen.Copy(jen.Id("tag").Index(jen.Op(":")), jen.Id("data").Index(jen.Op(":").Lit(8))),
			jen.Switch(jen.Id("tag")).Block(cases...),
		)
}
