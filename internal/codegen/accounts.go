package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// GenerateAccounts emits the account bindings unit: a discriminator
// variable and framed encode/decode functions per account, plus the struct
// declaration when the payload body is inlined in the account entry.
// By-name accounts reference their struct from the types unit.
func (g *Generator) GenerateAccounts() {
	if len(g.IDL.Accounts) == 0 {
		g.File.Comment("No accounts defined")
		return
	}
	for i := range g.IDL.Accounts {
		g.generateAccount(&g.IDL.Accounts[i])
	}
}

func (g *Generator) generateAccount(acc *idl.Account) {
	name := FormatTypeName(acc.Name)
	discVar := name + "Discriminator"

	if acc.Source == idl.PayloadInline && acc.Type != nil && acc.Type.Kind == "struct" {
		g.AddDocs(acc.Docs)
		g.generateRecord(name, *acc.Type, nil)
	}

	tag := g.tags.Accounts[acc.Name]
	g.File.Commentf("%s is the 8-byte tag prefixed to every %s account.", discVar, name)
	g.File.Var().Id(discVar).Op("=").Add(tagLiteral(tag))

	if !g.accountRecord(acc) {
		// The payload is not a struct declaration, so no framed wrappers:
		// the tag is still published for callers classifying raw data.
		return
	}

	g.emitFramedDecode("Decode"+name+"Account", name, discVar,
		"Decode"+name+"Account parses a "+name+" account from its framed payload.")
	g.emitFramedEncode("Encode"+name+"Account", name, discVar,
		"Encode"+name+"Account renders the framed payload of a "+name+" account.")
}

// accountRecord reports whether an account's payload is a struct the
// framed wrappers and the program dispatcher can decode into.
func (g *Generator) accountRecord(acc *idl.Account) bool {
	if acc.Source == idl.PayloadInline {
		return acc.Type != nil && acc.Type.Kind == "struct"
	}
	return g.recordPayload(acc.Name)
}

// tagLiteral emits an [8]byte composite literal for a discriminator.
func tagLiteral(tag [8]byte) *jen.Statement {
	values := make([]jen.Code, 8)
	for i, b := range tag {
		values[i] = jen.Lit(int(b))
	}
	return jen.Index(jen.Lit(8)).Byte().Values(values...)
}

// emitFramedDecode emits a function that checks the length and tag of a
// framed payload, then borsh-decodes the remainder into typeName.
func (g *Generator) emitFramedDecode(funcName, typeName, discVar, doc string) {
	g.File.Comment(doc)
	g.File.Func().Id(funcName).
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Op("*").Id(typeName), jen.Error()).
		Block(
			jen.If(jen.Len(jen.Id("data")).Op("<").Lit(8)).Block(
				jen.Return(jen.Nil(), jen.Id("PayloadTooShortError").Values(jen.Dict{
					jen.Id("Expected"): jen.Lit(8),
					jen.Id("Actual"):   jen.Len(jen.Id("data")),
				})),
			),
			jen.Var().Id("tag").Index(jen.Lit(8)).Byte(),
			jen.Copy(jen.Id("tag").Index(jen.Op(":")), jen.Id("data").Index(jen.Op(":").Lit(8))),
			jen.If(jen.Id("tag").Op("!=").Id(discVar)).Block(
				jen.Return(jen.Nil(), jen.Id("DiscriminatorMismatchError").Values(jen.Dict{
					jen.Id("Expected"): jen.Id(discVar),
					jen.Id("Actual"):   jen.Id("tag"),
				})),
			),
			jen.Id("obj").Op(":=").New(jen.Id(typeName)),
			jen.Id("decoder").Op(":=").Qual(pkgBinary, "NewBorshDecoder").Call(
				jen.Id("data").Index(jen.Lit(8).Op(":"))),
			jen.If(
				jen.Err().Op(":=").Id("obj").Dot("UnmarshalWithDecoder").Call(jen.Id("decoder")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Id("obj"), jen.Nil()),
		)
}

// emitFramedEncode emits a function writing the tag then the borsh payload.
func (g *Generator) emitFramedEncode(funcName, typeName, discVar, doc string) {
	g.File.Comment(doc)
	g.File.Func().Id(funcName).
		Params(jen.Id("obj").Op("*").Id(typeName)).
		Params(jen.Index().Byte(), jen.Error()).
		Block(
			jen.Id("buf").Op(":=").New(jen.Qual("bytes", "Buffer")),
			jen.Id("buf").Dot("Write").Call(jen.Id(discVar).Index(jen.Op(":"))),
			jen.Id("encoder").Op(":=").Qual(pkgBinary, "NewBorshEncoder").Call(jen.Id("buf")),
			jen.If(
				jen.Err().Op(":=").Id("obj").Dot("MarshalWithEncoder").Call(jen.Id("encoder")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Id("buf").Dot("Bytes").Call(), jen.Nil()),
		)
}
