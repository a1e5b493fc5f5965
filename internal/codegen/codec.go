package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// fieldSpec is one field of a record the codec generators walk: its Go
// name, its original IDL name (used in error messages), and its type.
type fieldSpec struct {
	GoName string
	Label  string
	Type   idl.TypeExpr
}

func namedFieldSpecs(fields []idl.Field) []fieldSpec {
	specs := make([]fieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = fieldSpec{GoName: FormatFieldName(f.Name), Label: f.Name, Type: f.Type}
	}
	return specs
}

func tupleFieldSpecs(tuple []idl.TypeExpr) []fieldSpec {
	specs := make([]fieldSpec, len(tuple))
	for i, t := range tuple {
		specs[i] = fieldSpec{GoName: fmt.Sprintf("Field%d", i), Label: fmt.Sprintf("%d", i), Type: t}
	}
	return specs
}

// structFields emits the field declarations of a record type.
func structFields(specs []fieldSpec, docs func(i int) []string) []jen.Code {
	out := make([]jen.Code, 0, len(specs))
	for i, f := range specs {
		field := jen.Id(f.GoName).Add(MapType(f.Type))
		if docs != nil {
			field = docsOn(field, docs(i))
		}
		out = append(out, field)
	}
	return out
}

// emitDefaultCodecs emits the borsh MarshalWithEncoder/UnmarshalWithDecoder
// pair for a record type. Every field failure is wrapped with the field
// name so a truncated payload reports where decoding stopped.
func (g *Generator) emitDefaultCodecs(typeName string, specs []fieldSpec) {
	marshalBody := make([]jen.Code, 0, len(specs)+1)
	for _, f := range specs {
		marshalBody = append(marshalBody, g.encodeFieldStmt(f))
	}
	marshalBody = append(marshalBody, jen.Return(jen.Nil()))

	g.File.Func().
		Params(jen.Id("obj").Id(typeName)).
		Id("MarshalWithEncoder").
		Params(jen.Id("encoder").Op("*").Qual(pkgBinary, "Encoder")).
		Error().
		Block(marshalBody...)

	unmarshalBody := make([]jen.Code, 0, len(specs)+1)
	for _, f := range specs {
		unmarshalBody = append(unmarshalBody, g.decodeFieldStmt(f))
	}
	unmarshalBody = append(unmarshalBody, jen.Return(jen.Nil()))

	g.File.Func().
		Params(jen.Id("obj").Op("*").Id(typeName)).
		Id("UnmarshalWithDecoder").
		Params(jen.Id("decoder").Op("*").Qual(pkgBinary, "Decoder")).
		Error().
		Block(unmarshalBody...)
}

func fieldErr(label string, wrapped ...jen.Code) *jen.Statement {
	args := append([]jen.Code{jen.Lit("field " + label + ": %w")}, wrapped...)
	return jen.Qual("fmt", "Errorf").Call(args...)
}

func indexedFieldErr(label string) *jen.Statement {
	return jen.Qual("fmt", "Errorf").Call(
		jen.Lit("field "+label+"[%d]: %w"), jen.Id("i"), jen.Err())
}

// encodeFieldStmt emits the statements encoding one field.
func (g *Generator) encodeFieldStmt(f fieldSpec) jen.Code {
	sel := func() *jen.Statement { return jen.Id("obj").Dot(f.GoName) }

	switch {
	case f.Type.Option != nil:
		inner := *f.Type.Option
		var present jen.Code
		if g.enums[inner.Defined] == enumComplex {
			present = jen.If(
				jen.Err().Op(":=").Id("Encode"+ToPascalCase(inner.Defined)).
					Call(jen.Id("encoder"), jen.Op("*").Add(sel())),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(fieldErr(f.Label, jen.Err())))
		} else {
			present = jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("Encode").Call(jen.Op("*").Add(sel())),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(fieldErr(f.Label, jen.Err())))
		}
		return jen.If(sel().Op("==").Nil()).Block(
			jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("WriteBool").Call(jen.False()),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
		).Else().Block(
			jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("WriteBool").Call(jen.True()),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			present,
		)

	case g.enums[f.Type.Defined] == enumComplex:
		return jen.If(
			jen.Err().Op(":=").Id("Encode"+ToPascalCase(f.Type.Defined)).
				Call(jen.Id("encoder"), sel()),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(fieldErr(f.Label, jen.Err())))

	case f.Type.Vec != nil && g.enums[f.Type.Vec.Defined] == enumComplex:
		return jen.Block(
			jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("WriteUint32").Call(
					jen.Uint32().Call(jen.Len(sel())),
					jen.Qual("encoding/binary", "LittleEndian"),
				),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			jen.For(jen.Id("i").Op(":=").Range().Add(sel())).Block(
				jen.If(
					jen.Err().Op(":=").Id("Encode"+ToPascalCase(f.Type.Vec.Defined)).
						Call(jen.Id("encoder"), sel().Index(jen.Id("i"))),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(indexedFieldErr(f.Label))),
			),
		)

	case f.Type.Array != nil && g.enums[f.Type.Array.Elem.Defined] == enumComplex:
		return jen.For(jen.Id("i").Op(":=").Range().Add(sel())).Block(
			jen.If(
				jen.Err().Op(":=").Id("Encode"+ToPascalCase(f.Type.Array.Elem.Defined)).
					Call(jen.Id("encoder"), sel().Index(jen.Id("i"))),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(indexedFieldErr(f.Label))),
		)

	default:
		return jen.If(
			jen.Err().Op(":=").Id("encoder").Dot("Encode").Call(sel()),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(fieldErr(f.Label, jen.Err())))
	}
}

// decodeFieldStmt emits the statements decoding one field.
func (g *Generator) decodeFieldStmt(f fieldSpec) jen.Code {
	sel := func() *jen.Statement { return jen.Id("obj").Dot(f.GoName) }

	switch {
	case f.Type.Option != nil:
		inner := *f.Type.Option
		flag := toCamelCase("has_" + f.Label)
		var fill jen.Code
		if g.enums[inner.Defined] == enumComplex {
			fill = jen.Block(
				jen.List(jen.Id("value"), jen.Err()).Op(":=").
					Id("Decode"+ToPascalCase(inner.Defined)).Call(jen.Id("decoder")),
				jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
				sel().Op("=").Op("&").Id("value"),
			)
		} else {
			fill = jen.Block(
				sel().Op("=").New(MapType(inner)),
				jen.If(
					jen.Err().Op(":=").Id("decoder").Dot("Decode").Call(sel()),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			)
		}
		return jen.Block(
			jen.List(jen.Id(flag), jen.Err()).Op(":=").Id("decoder").Dot("ReadBool").Call(),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			jen.If(jen.Id(flag)).Add(fill),
		)

	case g.enums[f.Type.Defined] == enumComplex:
		return jen.Block(
			jen.List(jen.Id("value"), jen.Err()).Op(":=").
				Id("Decode"+ToPascalCase(f.Type.Defined)).Call(jen.Id("decoder")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			sel().Op("=").Id("value"),
		)

	case f.Type.Vec != nil && g.enums[f.Type.Vec.Defined] == enumComplex:
		elem := ToPascalCase(f.Type.Vec.Defined)
		return jen.Block(
			jen.List(jen.Id("length"), jen.Err()).Op(":=").Id("decoder").Dot("ReadUint32").
				Call(jen.Qual("encoding/binary", "LittleEndian")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(fieldErr(f.Label, jen.Err()))),
			sel().Op("=").Make(jen.Index().Id(elem), jen.Id("length")),
			jen.For(jen.Id("i").Op(":=").Range().Add(sel())).Block(
				jen.List(jen.Id("value"), jen.Err()).Op(":=").
					Id("Decode"+elem).Call(jen.Id("decoder")),
				jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(indexedFieldErr(f.Label))),
				sel().Index(jen.Id("i")).Op("=").Id("value"),
			),
		)

	case f.Type.Array != nil && g.enums[f.Type.Array.Elem.Defined] == enumComplex:
		elem := ToPascalCase(f.Type.Array.Elem.Defined)
		return jen.For(jen.Id("i").Op(":=").Range().Add(sel())).Block(
			jen.List(jen.Id("value"), jen.Err()).Op(":=").
				Id("Decode"+elem).Call(jen.Id("decoder")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(indexedFieldErr(f.Label))),
			sel().Index(jen.Id("i")).Op("=").Id("value"),
		)

	default:
		return jen.If(
			jen.Err().Op(":=").Id("decoder").Dot("Decode").Call(jen.Op("&").Add(sel())),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(fieldErr(f.Label, jen.Err())))
	}
}
