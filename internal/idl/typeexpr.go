package idl

import (
	"encoding/json"
	"fmt"
)

// TypeExpr is the recursive abstract type expression of the IDL: a scalar
// name, a dynamic list, an optional, a fixed-size array, or a reference to
// a named type. Exactly one of the fields is set.
type TypeExpr struct {
	Scalar  string
	Vec     *TypeExpr
	Option  *TypeExpr
	Array   *ArrayExpr
	Defined string
}

// ArrayExpr is a fixed-size array: the element type and a non-negative
// length.
type ArrayExpr struct {
	Elem TypeExpr
	Len  int
}

// IsZeroValue reports whether the expression was never populated.
func (t TypeExpr) IsZeroValue() bool {
	return t.Scalar == "" && t.Vec == nil && t.Option == nil && t.Array == nil && t.Defined == ""
}

// UnmarshalJSON accepts every wire form the dialects use:
//
//	"u64"
//	{"vec": T}
//	{"option": T}
//	{"array": [T, n]}
//	{"defined": "Name"}
//	{"defined": {"name": "Name"}}
func (t *TypeExpr) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		t.Scalar = scalar
		return nil
	}

	var raw struct {
		Vec     *TypeExpr         `json:"vec"`
		Option  *TypeExpr         `json:"option"`
		Array   []json.RawMessage `json:"array"`
		Defined json.RawMessage   `json:"defined"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("type expression matches no known shape: %w", err)
	}

	switch {
	case raw.Vec != nil:
		t.Vec = raw.Vec
	case raw.Option != nil:
		t.Option = raw.Option
	case raw.Array != nil:
		if len(raw.Array) != 2 {
			return fmt.Errorf("array type must have exactly 2 elements, got %d", len(raw.Array))
		}
		var elem TypeExpr
		if err := json.Unmarshal(raw.Array[0], &elem); err != nil {
			return fmt.Errorf("array element type: %w", err)
		}
		var size int
		if err := json.Unmarshal(raw.Array[1], &size); err != nil {
			return fmt.Errorf("array size must be a number: %w", err)
		}
		if size < 0 {
			return fmt.Errorf("array size must be non-negative, got %d", size)
		}
		t.Array = &ArrayExpr{Elem: elem, Len: size}
	case raw.Defined != nil:
		name, err := definedName(raw.Defined)
		if err != nil {
			return err
		}
		t.Defined = name
	default:
		return fmt.Errorf("type expression matches no known shape: %s", string(data))
	}
	return nil
}

// MarshalJSON emits the modern dialect form.
func (t TypeExpr) MarshalJSON() ([]byte, error) {
	switch {
	case t.Scalar != "":
		return json.Marshal(t.Scalar)
	case t.Vec != nil:
		return json.Marshal(map[string]any{"vec": t.Vec})
	case t.Option != nil:
		return json.Marshal(map[string]any{"option": t.Option})
	case t.Array != nil:
		return json.Marshal(map[string]any{"array": []any{t.Array.Elem, t.Array.Len}})
	case t.Defined != "":
		return json.Marshal(map[string]any{"defined": map[string]string{"name": t.Defined}})
	}
	return nil, fmt.Errorf("cannot marshal empty type expression")
}

// definedName accepts both the plain string and the nested object form of a
// defined-type reference.
func definedName(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var nested struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return "", fmt.Errorf("defined type must be a name or {name}: %w", err)
	}
	if nested.Name == "" {
		return "", fmt.Errorf("defined type has no name")
	}
	return nested.Name, nil
}

// TypeDefBody is a kind-tagged record or sum body.
type TypeDefBody struct {
	Kind     string        // "struct" or "enum"
	Fields   []Field       // struct, named form
	Tuple    []TypeExpr    // struct, positional form
	Variants []EnumVariant // enum
}

// UnmarshalJSON detects the kind tag and the named-vs-tuple field shape.
func (b *TypeDefBody) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind     string            `json:"kind"`
		Fields   []json.RawMessage `json:"fields"`
		Variants []EnumVariant     `json:"variants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case "struct":
		b.Kind = "struct"
		fields, tuple, err := decodeFieldList(raw.Fields)
		if err != nil {
			return fmt.Errorf("struct fields: %w", err)
		}
		b.Fields = fields
		b.Tuple = tuple
		return nil
	case "enum":
		b.Kind = "enum"
		b.Variants = raw.Variants
		return nil
	default:
		return fmt.Errorf("unknown type kind %q", raw.Kind)
	}
}

// MarshalJSON emits the tagged form.
func (b TypeDefBody) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case "struct":
		if b.Tuple != nil {
			return json.Marshal(map[string]any{"kind": "struct", "fields": b.Tuple})
		}
		return json.Marshal(map[string]any{"kind": "struct", "fields": b.Fields})
	case "enum":
		return json.Marshal(map[string]any{"kind": "enum", "variants": b.Variants})
	}
	return nil, fmt.Errorf("cannot marshal type body of kind %q", b.Kind)
}

// EnumVariant is one case of a sum type: bare, named-field, or positional.
type EnumVariant struct {
	Name   string
	Fields []Field
	Tuple  []TypeExpr
}

// UnmarshalJSON detects the named-vs-tuple variant payload shape.
func (v *EnumVariant) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string            `json:"name"`
		Fields []json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name = raw.Name
	fields, tuple, err := decodeFieldList(raw.Fields)
	if err != nil {
		return fmt.Errorf("variant %s: %w", raw.Name, err)
	}
	v.Fields = fields
	v.Tuple = tuple
	return nil
}

// MarshalJSON emits the variant in whichever field shape it carries.
func (v EnumVariant) MarshalJSON() ([]byte, error) {
	out := map[string]any{"name": v.Name}
	if v.Fields != nil {
		out["fields"] = v.Fields
	} else if v.Tuple != nil {
		out["fields"] = v.Tuple
	}
	return json.Marshal(out)
}

// decodeFieldList resolves the untagged named-vs-positional field ambiguity
// the way the dialects define it: a list whose elements carry name+type is
// a named record, anything else is a positional tuple of type expressions.
func decodeFieldList(raw []json.RawMessage) ([]Field, []TypeExpr, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	var probe struct {
		Name *string         `json:"name"`
		Type json.RawMessage `json:"type"`
	}
	named := json.Unmarshal(raw[0], &probe) == nil && probe.Name != nil && probe.Type != nil

	if named {
		fields := make([]Field, 0, len(raw))
		for i, r := range raw {
			var f Field
			if err := json.Unmarshal(r, &f); err != nil {
				return nil, nil, fmt.Errorf("field %d: %w", i, err)
			}
			fields = append(fields, f)
		}
		return fields, nil, nil
	}

	tuple := make([]TypeExpr, 0, len(raw))
	for i, r := range raw {
		var t TypeExpr
		if err := json.Unmarshal(r, &t); err != nil {
			return nil, nil, fmt.Errorf("tuple element %d: %w", i, err)
		}
		tuple = append(tuple, t)
	}
	return nil, tuple, nil
}
