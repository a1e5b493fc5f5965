package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// emitFixedCodecs emits the zero-copy codec of a fixed-layout type: a size
// constant, raw buffer writers at precomputed offsets, and the standard
// encoder/decoder pair on top of them.
func (g *Generator) emitFixedCodecs(typeName string, layout *Layout) {
	sizeConst := typeName + "Size"
	g.File.Commentf("%s is the wire size of %s in bytes.", sizeConst, typeName)
	g.File.Const().Id(sizeConst).Op("=").Lit(layout.Size)

	putBody := make([]jen.Code, 0, len(layout.Fields))
	getBody := make([]jen.Code, 0, len(layout.Fields))
	for _, fo := range layout.Fields {
		sel := func() *jen.Statement { return jen.Id("obj").Dot(FormatFieldName(fo.Name)) }
		off := func() *jen.Statement { return jen.Lit(fo.Offset) }
		putBody = append(putBody, g.putFixedValue(sel, fo.Type, off)...)
		getBody = append(getBody, g.getFixedValue(sel, fo.Type, off)...)
	}

	g.File.Func().
		Params(jen.Id("obj").Id(typeName)).
		Id("marshalFixed").
		Params(jen.Id("buf").Index().Byte()).
		Block(putBody...)

	g.File.Func().
		Params(jen.Id("obj").Op("*").Id(typeName)).
		Id("unmarshalFixed").
		Params(jen.Id("buf").Index().Byte()).
		Block(getBody...)

	g.File.Func().
		Params(jen.Id("obj").Id(typeName)).
		Id("MarshalWithEncoder").
		Params(jen.Id("encoder").Op("*").Qual(pkgBinary, "Encoder")).
		Error().
		Block(
			jen.Id("buf").Op(":=").Make(jen.Index().Byte(), jen.Id(sizeConst)),
			jen.Id("obj").Dot("marshalFixed").Call(jen.Id("buf")),
			jen.Return(jen.Id("encoder").Dot("WriteBytes").Call(jen.Id("buf"), jen.False())),
		)

	g.File.Commentf("UnmarshalWithDecoder reads the fixed %d-byte layout of %s.", layout.Size, typeName)
	g.File.Comment("The wire buffer is copied field by field; decoded values never alias it.")
	g.File.Func().
		Params(jen.Id("obj").Op("*").Id(typeName)).
		Id("UnmarshalWithDecoder").
		Params(jen.Id("decoder").Op("*").Qual(pkgBinary, "Decoder")).
		Error().
		Block(
			jen.List(jen.Id("buf"), jen.Err()).Op(":=").
				Id("decoder").Dot("ReadNBytes").Call(jen.Id(sizeConst)),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
			jen.Id("obj").Dot("unmarshalFixed").Call(jen.Id("buf")),
			jen.Return(jen.Nil()),
		)
}

func littleEndian() *jen.Statement {
	return jen.Qual("encoding/binary", "LittleEndian")
}

func bufAt(off func() *jen.Statement) *jen.Statement {
	return jen.Id("buf").Index(off().Op(":"))
}

func bufRange(off func() *jen.Statement, size int) *jen.Statement {
	return jen.Id("buf").Index(off().Op(":").Add(off().Op("+").Lit(size)))
}

func offsetPlus(off func() *jen.Statement, delta int) func() *jen.Statement {
	return func() *jen.Statement { return off().Op("+").Lit(delta) }
}

// putFixedValue emits statements storing one value into buf at a fixed
// offset.
func (g *Generator) putFixedValue(sel func() *jen.Statement, t idl.TypeExpr, off func() *jen.Statement) []jen.Code {
	if t.Scalar != "" {
		info := scalarTable[t.Scalar]
		switch info.kind {
		case scalarBool:
			return []jen.Code{jen.If(sel()).Block(
				jen.Id("buf").Index(off()).Op("=").Lit(1),
			)}
		case scalarPubkey:
			return []jen.Code{jen.Copy(bufRange(off, 32), sel().Index(jen.Op(":")))}
		case scalarU128, scalarI128:
			return []jen.Code{
				littleEndian().Dot("PutUint64").Call(bufAt(off), sel().Dot("Lo")),
				littleEndian().Dot("PutUint64").Call(bufAt(offsetPlus(off, 8)), sel().Dot("Hi")),
			}
		}
		switch info.size {
		case 1:
			if info.kind == scalarInt {
				return []jen.Code{jen.Id("buf").Index(off()).Op("=").Byte().Call(sel())}
			}
			return []jen.Code{jen.Id("buf").Index(off()).Op("=").Add(sel())}
		case 2:
			return []jen.Code{littleEndian().Dot("PutUint16").Call(bufAt(off), castUnsigned(sel(), info, 16))}
		case 4:
			return []jen.Code{littleEndian().Dot("PutUint32").Call(bufAt(off), castUnsigned(sel(), info, 32))}
		case 8:
			return []jen.Code{littleEndian().Dot("PutUint64").Call(bufAt(off), castUnsigned(sel(), info, 64))}
		}
	}

	if t.Array != nil {
		elemSize, _ := g.layouts.sizeAlignOf(t.Array.Elem, map[string]bool{})
		if t.Array.Elem.Scalar == "u8" {
			return []jen.Code{jen.Copy(bufRange(off, t.Array.Len), sel().Index(jen.Op(":")))}
		}
		elemSel := func() *jen.Statement { return sel().Index(jen.Id("i")) }
		elemOff := func() *jen.Statement {
			return off().Op("+").Id("i").Op("*").Lit(elemSize)
		}
		return []jen.Code{
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Lit(t.Array.Len), jen.Id("i").Op("++")).
				Block(g.putFixedValue(elemSel, t.Array.Elem, elemOff)...),
		}
	}

	// Nested fixed struct.
	return []jen.Code{sel().Dot("marshalFixed").Call(bufAt(off))}
}

// getFixedValue emits statements loading one value from buf at a fixed
// offset.
func (g *Generator) getFixedValue(sel func() *jen.Statement, t idl.TypeExpr, off func() *jen.Statement) []jen.Code {
	if t.Scalar != "" {
		info := scalarTable[t.Scalar]
		switch info.kind {
		case scalarBool:
			return []jen.Code{sel().Op("=").Id("buf").Index(off()).Op("!=").Lit(0)}
		case scalarPubkey:
			return []jen.Code{jen.Copy(sel().Index(jen.Op(":")), bufRange(off, 32))}
		case scalarU128, scalarI128:
			return []jen.Code{
				sel().Dot("Lo").Op("=").Add(littleEndian().Dot("Uint64").Call(bufAt(off))),
				sel().Dot("Hi").Op("=").Add(littleEndian().Dot("Uint64").Call(bufAt(offsetPlus(off, 8)))),
			}
		}
		switch info.size {
		case 1:
			if info.kind == scalarInt {
				return []jen.Code{sel().Op("=").Int8().Call(jen.Id("buf").Index(off()))}
			}
			return []jen.Code{sel().Op("=").Id("buf").Index(off())}
		case 2:
			return []jen.Code{sel().Op("=").Add(castSigned(littleEndian().Dot("Uint16").Call(bufAt(off)), info, 16))}
		case 4:
			return []jen.Code{sel().Op("=").Add(castSigned(littleEndian().Dot("Uint32").Call(bufAt(off)), info, 32))}
		case 8:
			return []jen.Code{sel().Op("=").Add(castSigned(littleEndian().Dot("Uint64").Call(bufAt(off)), info, 64))}
		}
	}

	if t.Array != nil {
		elemSize, _ := g.layouts.sizeAlignOf(t.Array.Elem, map[string]bool{})
		if t.Array.Elem.Scalar == "u8" {
			return []jen.Code{jen.Copy(sel().Index(jen.Op(":")), bufRange(off, t.Array.Len))}
		}
		elemSel := func() *jen.Statement { return sel().Index(jen.Id("i")) }
		elemOff := func() *jen.Statement {
			return off().Op("+").Id("i").Op("*").Lit(elemSize)
		}
		return []jen.Code{
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Lit(t.Array.Len), jen.Id("i").Op("++")).
				Block(g.getFixedValue(elemSel, t.Array.Elem, elemOff)...),
		}
	}

	return []jen.Code{sel().Dot("unmarshalFixed").Call(bufAt(off))}
}

// castUnsigned converts a store value to the unsigned type PutUintN wants.
func castUnsigned(sel *jen.Statement, info scalarInfo, bits int) *jen.Statement {
	if info.kind == scalarUint {
		return sel
	}
	var conv *jen.Statement
	switch bits {
	case 16:
		conv = jen.Uint16()
	case 32:
		conv = jen.Uint32()
	default:
		conv = jen.Uint64()
	}
	if info.kind == scalarFloat {
		if bits == 32 {
			return jen.Qual("math", "Float32bits").Call(sel)
		}
		return jen.Qual("math", "Float64bits").Call(sel)
	}
	return conv.Call(sel)
}

// castSigned converts a loaded unsigned value back to the field's type.
func castSigned(loaded *jen.Statement, info scalarInfo, bits int) *jen.Statement {
	switch info.kind {
	case scalarUint:
		return loaded
	case scalarFloat:
		if bits == 32 {
			return jen.Qual("math", "Float32frombits").Call(loaded)
		}
		return jen.Qual("math", "Float64frombits").Call(loaded)
	default:
		var conv *jen.Statement
		switch bits {
		case 16:
			conv = jen.Int16()
		case 32:
			conv = jen.Int32()
		default:
			conv = jen.Int64()
		}
		return conv.Call(loaded)
	}
}
