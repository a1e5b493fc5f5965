package codegen

import (
	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// GenerateEvents emits the event bindings unit. Every event type carries an
// Event suffix so event names never collide with account or instruction
// types; by-name events alias the payload struct from the types unit
// instead of redeclaring it.
func (g *Generator) GenerateEvents() {
	if len(g.IDL.Events) == 0 {
		g.File.Comment("No events defined")
		return
	}
	for i := range g.IDL.Events {
		g.generateEvent(&g.IDL.Events[i])
	}
}

func (g *Generator) generateEvent(ev *idl.Event) {
	base := FormatTypeName(ev.Name)
	name := base + "Event"
	discVar := name + "Discriminator"

	if ev.Source == idl.PayloadInline {
		specs := make([]fieldSpec, len(ev.Fields))
		for i, f := range ev.Fields {
			specs[i] = fieldSpec{GoName: FormatFieldName(f.Name), Label: f.Name, Type: f.Type}
		}
		g.AddDocs(ev.Docs)
		g.File.Type().Id(name).Struct(structFields(specs, func(i int) []string {
			if ev.Fields[i].Index {
				return []string{"Indexed for log filtering."}
			}
			return nil
		})...)
		g.emitDefaultCodecs(name, specs)
	} else {
		g.AddDocs(ev.Docs)
		g.File.Commentf("%s is the payload of the %s event, declared under types.", name, ev.Name)
		g.File.Type().Id(name).Op("=").Id(base)
	}

	tag := g.tags.Events[ev.Name]
	g.File.Commentf("%s is the 8-byte tag prefixed to every %s payload.", discVar, name)
	g.File.Var().Id(discVar).Op("=").Add(tagLiteral(tag))

	if ev.Source != idl.PayloadInline && !g.recordPayload(ev.Name) {
		// The by-name payload is not a struct (a sum type uses its variant
		// dispatchers, a data-less enum its integer codec, and an undeclared
		// name passes through), so there are no framing wrappers to anchor.
		return
	}

	g.emitFramedDecode("Decode"+name, name, discVar,
		"Decode"+name+" parses a "+name+" from its framed payload.")
	g.emitFramedEncode("Encode"+name, name, discVar,
		"Encode"+name+" renders the framed payload of a "+name+".")
}
