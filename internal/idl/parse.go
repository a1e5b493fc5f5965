package idl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ParseError reports a schema that is malformed JSON or fails to satisfy
// any recognized dialect shape. Path carries whatever positional context
// the decoder surfaced; the caller halts, nothing is partially normalized.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema parse error at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("schema parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseFile reads and normalizes an IDL file.
func ParseFile(path string) (*IDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read IDL file: %w", err)
	}
	return Parse(data)
}

// Parse normalizes raw IDL JSON into the canonical schema. Dialect
// detection is structural: the custom unmarshallers absorb every supported
// shape, so a decode error means no dialect matched.
func Parse(data []byte) (*IDL, error) {
	var schema IDL
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, &ParseError{Path: errorPath(err), Err: err}
	}
	normalize(&schema)
	return &schema, nil
}

// normalize resolves the payload-source tag for every account and event
// once, immediately after parsing, so downstream codegen never re-detects
// which dialect produced a declaration.
func normalize(schema *IDL) {
	if schema.Instructions == nil {
		schema.Instructions = []Instruction{}
	}
	for i := range schema.Accounts {
		if schema.Accounts[i].Type != nil {
			schema.Accounts[i].Source = PayloadInline
		} else {
			schema.Accounts[i].Source = PayloadByName
		}
	}
	for i := range schema.Events {
		if len(schema.Events[i].Fields) > 0 {
			schema.Events[i].Source = PayloadInline
		} else {
			schema.Events[i].Source = PayloadByName
		}
	}
}

// TypeByName looks up a user-defined type declaration.
func (i *IDL) TypeByName(name string) (*TypeDef, bool) {
	for idx := range i.Types {
		if i.Types[idx].Name == name {
			return &i.Types[idx], true
		}
	}
	return nil, false
}

// AccountNames lists account declaration names in order.
func (i *IDL) AccountNames() []string {
	names := make([]string, len(i.Accounts))
	for idx, a := range i.Accounts {
		names[idx] = a.Name
	}
	return names
}

// EventNames lists event declaration names in order.
func (i *IDL) EventNames() []string {
	names := make([]string, len(i.Events))
	for idx, e := range i.Events {
		names[idx] = e.Name
	}
	return names
}

// InstructionNames lists instruction names in declaration order.
func (i *IDL) InstructionNames() []string {
	names := make([]string, len(i.Instructions))
	for idx, ix := range i.Instructions {
		names[idx] = ix.Name
	}
	return names
}

// Clone deep-copies the schema via its JSON form. Override application
// patches a copy so the parsed original stays untouched.
func (i *IDL) Clone() *IDL {
	data, err := json.Marshal(i)
	if err != nil {
		// The schema round-trips by construction; a marshal failure here
		// is a programming error.
		panic(fmt.Sprintf("idl: clone marshal failed: %v", err))
	}
	var out IDL
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("idl: clone unmarshal failed: %v", err))
	}
	normalize(&out)
	return &out
}

// errorPath extracts positional context from an encoding/json error.
func errorPath(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return typeErr.Field
		}
		return fmt.Sprintf("offset %d", typeErr.Offset)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("offset %d", syntaxErr.Offset)
	}
	return ""
}
