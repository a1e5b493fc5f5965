package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// GenerateTypes emits the shared type declarations unit: one Go declaration
// per entry in the IDL types list, with codecs matching each type's
// serialization strategy.
func (g *Generator) GenerateTypes() {
	if len(g.IDL.Types) == 0 {
		g.File.Comment("No types defined")
		return
	}
	for i := range g.IDL.Types {
		g.generateTypeDef(&g.IDL.Types[i])
	}
}

func (g *Generator) generateTypeDef(td *idl.TypeDef) {
	name := FormatTypeName(td.Name)
	switch td.Type.Kind {
	case "enum":
		if g.enums[td.Name] == enumComplex {
			g.generateComplexEnum(name, td)
		} else {
			g.generateSimpleEnum(name, td)
		}
	default:
		g.AddDocs(td.Docs)
		g.generateRecord(name, td.Type, g.layouts.Lookup(td.Name))
	}
}

// generateRecord emits a struct declaration and its codecs. Layout is nil
// for default-strategy types.
func (g *Generator) generateRecord(name string, body idl.TypeDefBody, layout *Layout) {
	var specs []fieldSpec
	var docs func(i int) []string
	if body.Tuple != nil {
		specs = tupleFieldSpecs(body.Tuple)
	} else {
		specs = namedFieldSpecs(body.Fields)
		docs = func(i int) []string { return body.Fields[i].Docs }
	}

	g.File.Type().Id(name).Struct(structFields(specs, docs)...)

	if layout != nil {
		g.emitFixedCodecs(name, layout)
		return
	}
	g.emitDefaultCodecs(name, specs)
}

// generateSimpleEnum emits a data-less enum as a uint8 with one constant
// per variant and a String method.
func (g *Generator) generateSimpleEnum(name string, td *idl.TypeDef) {
	g.AddDocs(td.Docs)
	g.File.Type().Id(name).Uint8()

	consts := make([]jen.Code, 0, len(td.Type.Variants))
	for i, v := range td.Type.Variants {
		c := jen.Id(FormatVariantName(name, v.Name))
		if i == 0 {
			c = c.Id(name).Op("=").Iota()
		}
		consts = append(consts, c)
	}
	g.File.Const().Defs(consts...)

	cases := make([]jen.Code, 0, len(td.Type.Variants)+1)
	for _, v := range td.Type.Variants {
		cases = append(cases, jen.Case(jen.Id(FormatVariantName(name, v.Name))).Block(
			jen.Return(jen.Lit(v.Name)),
		))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(name+"(%d)"), jen.Uint8().Call(jen.Id("value")))),
	))
	g.File.Func().
		Params(jen.Id("value").Id(name)).
		Id("String").Params().String().
		Block(jen.Switch(jen.Id("value")).Block(cases...))
}

// generateComplexEnum emits a data-carrying enum as a sealed interface,
// one struct per variant, and a pair of dispatcher functions keyed on the
// u8 variant index.
func (g *Generator) generateComplexEnum(name string, td *idl.TypeDef) {
	markerMethod := "is" + name

	g.AddDocs(td.Docs)
	g.File.Commentf("%s is a sum type; values are one of its variant structs.", name)
	g.File.Type().Id(name).Interface(
		jen.Id(markerMethod).Params(),
	)

	for _, v := range td.Type.Variants {
		variantName := FormatVariantName(name, v.Name)
		body := idl.TypeDefBody{Kind: "struct", Fields: v.Fields, Tuple: v.Tuple}
		g.generateRecord(variantName, body, nil)
		g.File.Func().Params(jen.Id(variantName)).Id(markerMethod).Params().Block()
	}

	encodeCases := make([]jen.Code, 0, len(td.Type.Variants)+1)
	for i, v := range td.Type.Variants {
		variantName := FormatVariantName(name, v.Name)
		encodeCases = append(encodeCases, jen.Case(jen.Id(variantName)).Block(
			jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("WriteUint8").Call(jen.Lit(i)),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err())),
			jen.Return(jen.Id("v").Dot("MarshalWithEncoder").Call(jen.Id("encoder"))),
		))
	}
	encodeCases = append(encodeCases, jen.Default().Block(
		jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+name+" variant %T"), jen.Id("value"))),
	))
	g.File.Commentf("Encode%s writes the variant index and payload of value.", name)
	g.File.Func().Id("Encode"+name).
		Params(
			jen.Id("encoder").Op("*").Qual(pkgBinary, "Encoder"),
			jen.Id("value").Id(name),
		).
		Error().
		Block(jen.Switch(jen.Id("v").Op(":=").Id("value").Assert(jen.Type())).Block(encodeCases...))

	decodeCases := make([]jen.Code, 0, len(td.Type.Variants)+1)
	for i, v := range td.Type.Variants {
		variantName := FormatVariantName(name, v.Name)
		decodeCases = append(decodeCases, jen.Case(jen.Lit(i)).Block(
			jen.Var().Id("v").Id(variantName),
			jen.If(
				jen.Err().Op(":=").Id("v").Dot("UnmarshalWithDecoder").Call(jen.Id("decoder")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Id("v"), jen.Nil()),
		))
	}
	decodeCases = append(decodeCases, jen.Default().Block(
		jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+name+" variant index %d"), jen.Id("tag"))),
	))
	g.File.Commentf("Decode%s reads the variant index and decodes the matching variant.", name)
	g.File.Func().Id("Decode"+name).
		Params(jen.Id("decoder").Op("*").Qual(pkgBinary, "Decoder")).
		Params(jen.Id(name), jen.Error()).
		Block(
			jen.List(jen.Id("tag"), jen.Err()).Op(":=").Id("decoder").Dot("ReadUint8").Call(),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Switch(jen.Id("tag")).Block(decodeCases...),
		)
}
