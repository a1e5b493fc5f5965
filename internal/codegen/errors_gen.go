package codegen

import (
	"github.com/dave/jennifer/jen"
)

// GenerateErrors emits the program errors unit: a typed error code with one
// constant per declared error, a message lookup, and a code-to-error
// mapping for raw on-chain codes.
func (g *Generator) GenerateErrors() {
	if len(g.IDL.Errors) == 0 {
		g.File.Comment("No errors defined")
		return
	}

	g.File.Comment("ProgramError is a typed on-chain error code.")
	g.File.Type().Id("ProgramError").Int32()

	consts := make([]jen.Code, 0, len(g.IDL.Errors))
	for _, e := range g.IDL.Errors {
		c := jen.Empty()
		if e.Msg != "" {
			c.Comment(e.Msg).Line()
		}
		c.Id("ProgramError" + FormatTypeName(e.Name)).Id("ProgramError").Op("=").Lit(e.Code)
		consts = append(consts, c)
	}
	g.File.Const().Defs(consts...)

	msgCases := make([]jen.Code, 0, len(g.IDL.Errors)+1)
	for _, e := range g.IDL.Errors {
		msg := e.Name
		if e.Msg != "" {
			msg = e.Name + ": " + e.Msg
		}
		msgCases = append(msgCases, jen.Case(jen.Id("ProgramError"+FormatTypeName(e.Name))).Block(
			jen.Return(jen.Lit(msg)),
		))
	}
	msgCases = append(msgCases, jen.Default().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("unknown program error %d"), jen.Int32().Call(jen.Id("e")))),
	))
	g.File.Func().
		Params(jen.Id("e").Id("ProgramError")).
		Id("Error").Params().String().
		Block(jen.Switch(jen.Id("e")).Block(msgCases...))

	codeCases := make([]jen.Code, 0, len(g.IDL.Errors)+1)
	for _, e := range g.IDL.Errors {
		codeCases = append(codeCases, jen.Case(jen.Lit(e.Code)).Block(
			jen.Return(jen.Id("ProgramError"+FormatTypeName(e.Name)), jen.True()),
		))
	}
	codeCases = append(codeCases, jen.Default().Block(
		jen.Return(jen.Lit(0), jen.False()),
	))
	g.File.Comment("ProgramErrorFromCode maps a raw on-chain code to a typed error.")
	g.File.Func().Id("ProgramErrorFromCode").
		Params(jen.Id("code").Int32()).
		Params(jen.Id("ProgramError"), jen.Bool()).
		Block(jen.Switch(jen.Id("code")).Block(codeCases...))
}
