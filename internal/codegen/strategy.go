package codegen

import (
	"strings"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// Strategy selects how a type's codec is generated.
type Strategy int

const (
	// StrategyDefault is length-prefixed borsh encoding with per-field
	// error recovery.
	StrategyDefault Strategy = iota

	// StrategyFixedLayout is zero-copy fixed-offset encoding for types
	// whose IDL declares a bytemuck serialization.
	StrategyFixedLayout
)

func (s Strategy) String() string {
	if s == StrategyFixedLayout {
		return "fixed-layout"
	}
	return "default"
}

// wantsFixedLayout reports whether the type declares a fixed-layout
// serialization tag. The request is honored only when every field has a
// computable fixed size; see LayoutRegistry.
func wantsFixedLayout(td *idl.TypeDef) bool {
	switch strings.ToLower(td.Serialization) {
	case "bytemuck", "bytemuckunsafe":
		return true
	}
	return false
}

// FieldOffset is one field's resolved position in a fixed layout.
type FieldOffset struct {
	Name   string
	Type   idl.TypeExpr
	Offset int
}

// Layout is the fully resolved fixed layout of a struct type: total size,
// natural alignment, and the byte offset of every field.
type Layout struct {
	Size   int
	Align  int
	Fields []FieldOffset
	Packed bool
}

// LayoutRegistry maps type name to fixed layout. Built once per schema and
// read-only afterward. A type absent from the registry has no fixed layout
// and encodes with the default strategy even if its IDL asked otherwise.
type LayoutRegistry struct {
	layouts map[string]*Layout
	defs    map[string]*idl.TypeDef
}

// BuildLayoutRegistry resolves the fixed layout of every type that declares
// a bytemuck serialization. Types whose layout cannot be computed (dynamic
// fields, enums, tuples, unresolved references, cycles) are silently left
// out; their codecs fall back to the default strategy.
func BuildLayoutRegistry(schema *idl.IDL) *LayoutRegistry {
	reg := &LayoutRegistry{
		layouts: make(map[string]*Layout),
		defs:    make(map[string]*idl.TypeDef, len(schema.Types)),
	}
	for i := range schema.Types {
		reg.defs[schema.Types[i].Name] = &schema.Types[i]
	}
	for i := range schema.Types {
		td := &schema.Types[i]
		if wantsFixedLayout(td) {
			reg.resolve(td.Name, map[string]bool{})
		}
	}
	return reg
}

// Lookup returns the fixed layout for a named type, nil when the type has
// none.
func (r *LayoutRegistry) Lookup(name string) *Layout {
	return r.layouts[name]
}

// StrategyFor returns the strategy a named type's codec uses.
func (r *LayoutRegistry) StrategyFor(name string) Strategy {
	if r.layouts[name] != nil {
		return StrategyFixedLayout
	}
	return StrategyDefault
}

// resolve computes (and memoizes) the layout of a named type. visiting
// guards against reference cycles.
func (r *LayoutRegistry) resolve(name string, visiting map[string]bool) *Layout {
	if l, ok := r.layouts[name]; ok {
		return l
	}
	if visiting[name] {
		return nil
	}
	td, ok := r.defs[name]
	if !ok {
		return nil
	}
	if td.Type.Kind != "struct" || td.Type.Tuple != nil {
		return nil
	}

	visiting[name] = true
	defer delete(visiting, name)

	layout := &Layout{Align: 1, Packed: td.IsPacked()}
	offset := 0
	for _, f := range td.Type.Fields {
		size, align := r.sizeAlignOf(f.Type, visiting)
		if size < 0 {
			return nil
		}
		if layout.Packed {
			align = 1
		}
		offset = alignUp(offset, align)
		layout.Fields = append(layout.Fields, FieldOffset{Name: f.Name, Type: f.Type, Offset: offset})
		offset += size
		if align > layout.Align {
			layout.Align = align
		}
	}
	layout.Size = alignUp(offset, layout.Align)

	r.layouts[name] = layout
	return layout
}

// sizeAlignOf returns the byte size and natural alignment of a type
// expression, or (-1, 0) when the type has no fixed size.
func (r *LayoutRegistry) sizeAlignOf(t idl.TypeExpr, visiting map[string]bool) (int, int) {
	switch {
	case t.Scalar != "":
		info, ok := scalarTable[t.Scalar]
		if !ok || info.size == 0 {
			return -1, 0
		}
		if info.kind == scalarPubkey {
			// 32 raw bytes, byte-aligned.
			return 32, 1
		}
		return info.size, info.size
	case t.Array != nil:
		elemSize, elemAlign := r.sizeAlignOf(t.Array.Elem, visiting)
		if elemSize < 0 {
			return -1, 0
		}
		return elemSize * t.Array.Len, elemAlign
	case t.Defined != "":
		nested := r.resolve(t.Defined, visiting)
		if nested == nil {
			return -1, 0
		}
		return nested.Size, nested.Align
	}
	// vec, option, string, bytes are dynamically sized.
	return -1, 0
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + align - rem
}
