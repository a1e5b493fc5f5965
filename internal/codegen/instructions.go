package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// GenerateInstructions emits the instruction bindings unit: per instruction
// a typed arguments struct, an accounts struct mirroring the declared
// account slots, a discriminator variable, and a builder producing a ready
// solana.Instruction. A ParseInstruction dispatcher routes raw instruction
// data to the matching arguments struct by tag.
func (g *Generator) GenerateInstructions() {
	if len(g.IDL.Instructions) == 0 {
		g.File.Comment("No instructions defined")
		return
	}
	for i := range g.IDL.Instructions {
		g.generateInstruction(&g.IDL.Instructions[i])
	}
	g.generateInstructionParser()
}

func (g *Generator) generateInstruction(ix *idl.Instruction) {
	name := FormatTypeName(ix.Name) + "Instruction"
	discVar := name + "Discriminator"
	accountsName := FormatTypeName(ix.Name) + "Accounts"

	specs := namedFieldSpecs(ix.Args)
	g.AddDocs(ix.Docs)
	g.File.Type().Id(name).Struct(structFields(specs, func(i int) []string {
		return ix.Args[i].Docs
	})...)
	g.emitDefaultCodecs(name, specs)

	tag := g.tags.Instructions[ix.Name]
	g.File.Commentf("%s is the 8-byte tag prefixed to %s data.", discVar, name)
	g.File.Var().Id(discVar).Op("=").Add(tagLiteral(tag))

	accountFields := make([]jen.Code, 0, len(ix.Accounts))
	for _, ref := range ix.Accounts {
		field := jen.Id(FormatFieldName(ref.Name))
		if ref.Optional {
			// Optional slots are pointers; nil means the slot is omitted.
			field = field.Op("*")
		}
		field = field.Qual(pkgSolana, "PublicKey")
		docs := append([]string{}, ref.Docs...)
		if flags := accountFlags(ref); flags != "" {
			docs = append(docs, flags)
		}
		accountFields = append(accountFields, docsOn(field, docs))
	}
	g.File.Commentf("%s are the account slots of the %s instruction.", accountsName, ix.Name)
	g.File.Type().Id(accountsName).Struct(accountFields...)

	body := []jen.Code{
		jen.Id("buf").Op(":=").New(jen.Qual("bytes", "Buffer")),
		jen.Id("buf").Dot("Write").Call(jen.Id(discVar).Index(jen.Op(":"))),
		jen.Id("encoder").Op(":=").Qual(pkgBinary, "NewBorshEncoder").Call(jen.Id("buf")),
		jen.If(
			jen.Err().Op(":=").Id("args").Dot("MarshalWithEncoder").Call(jen.Id("encoder")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Id("metas").Op(":=").Make(
			jen.Qual(pkgSolana, "AccountMetaSlice"), jen.Lit(0), jen.Lit(len(ix.Accounts))),
	}
	for _, ref := range ix.Accounts {
		slot := jen.Id("accounts").Dot(FormatFieldName(ref.Name))
		appendMeta := func(value jen.Code) *jen.Statement {
			return jen.Id("metas").Op("=").Append(jen.Id("metas"),
				jen.Qual(pkgSolana, "NewAccountMeta").Call(
					value, jen.Lit(ref.Writable), jen.Lit(ref.Signer)))
		}
		if ref.Optional {
			body = append(body, jen.If(slot.Clone().Op("!=").Nil()).Block(
				appendMeta(jen.Op("*").Add(slot.Clone())),
			))
		} else {
			body = append(body, appendMeta(slot))
		}
	}
	body = append(body, jen.Return(
		jen.Qual(pkgSolana, "NewInstruction").Call(
			jen.Id("ProgramID"),
			jen.Id("metas"),
			jen.Id("buf").Dot("Bytes").Call(),
		),
		jen.Nil(),
	))

	g.File.Commentf("New%s builds a framed %s instruction.", name, ix.Name)
	g.File.Func().Id("New"+name).
		Params(
			jen.Id("args").Id(name),
			jen.Id("accounts").Id(accountsName),
		).
		Params(jen.Qual(pkgSolana, "Instruction"), jen.Error()).
		Block(body...)
}

// accountFlags renders the slot markers of an account reference.
func accountFlags(ref idl.AccountRef) string {
	var flags []string
	if ref.Writable {
		flags = append(flags, "WRITE")
	}
	if ref.Signer {
		flags = append(flags, "SIGNER")
	}
	if ref.Optional {
		flags = append(flags, "OPTIONAL")
	}
	if ref.PDA != nil {
		flags = append(flags, "PDA")
	}
	if len(flags) == 0 {
		return ""
	}
	return "[" + strings.Join(flags, ", ") + "]"
}

func (g *Generator) generateInstructionParser() {
	cases := make([]jen.Code, 0, len(g.IDL.Instructions)+1)
	for _, ix := range g.IDL.Instructions {
		name := FormatTypeName(ix.Name) + "Instruction"
		cases = append(cases, jen.Case(jen.Id(name+"Discriminator")).Block(
			jen.Id("obj").Op(":=").New(jen.Id(name)),
			jen.If(
				jen.Err().Op(":=").Id("obj").Dot("UnmarshalWithDecoder").Call(jen.Id("decoder")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Id("obj"), jen.Nil()),
		))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Nil(), jen.Id("UnknownDiscriminatorError").Values(jen.Dict{
			jen.Id("Discriminator"): jen.Id("tag"),
		})),
	))

	g.File.Comment("ParseInstruction decodes framed instruction data into the matching")
	g.File.Comment("typed arguments struct.")
	g.File.Func().Id("ParseInstruction").
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
			jen.Id("decoder").Op(":=").Qual(pkgBinary, "NewBorshDecoder").Call(
				jen.Id("data").Index(jen.Lit(8).Op(":"))),
			jen.Switch(jen.Id("tag")).Block(cases...),
		)
}
