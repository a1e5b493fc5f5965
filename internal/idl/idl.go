// Package idl models Anchor IDL documents and normalizes the historically
// incompatible JSON dialects into one canonical in-memory shape.
package idl

import (
	"encoding/json"
	"fmt"
)

// Sentinel defaults returned by the metadata accessors when neither the
// top-level field nor the metadata object carries a value.
const (
	DefaultName    = "unknown"
	DefaultVersion = "0.0.0"
)

// IDL is the canonical program schema. Both the legacy dialect (flat
// top-level name/version, inline account bodies, isSigner/isMut flags) and
// the modern dialect (metadata object, by-name account payloads,
// signer/writable flags) unmarshal into this one shape.
type IDL struct {
	Address      string         `json:"address,omitempty"`
	Version      string         `json:"version,omitempty"`
	Name         string         `json:"name,omitempty"`
	Metadata     *Metadata      `json:"metadata,omitempty"`
	Instructions []Instruction  `json:"instructions"`
	Accounts     []Account      `json:"accounts,omitempty"`
	Types        []TypeDef      `json:"types,omitempty"`
	Errors       []ErrorDef     `json:"errors,omitempty"`
	Events       []Event        `json:"events,omitempty"`
	Constants    []Constant     `json:"constants,omitempty"`
}

// Metadata is the nested metadata object of the modern dialect.
type Metadata struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Spec        string `json:"spec,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

// GetName resolves the program name: top-level field first, metadata object
// as fallback, sentinel default otherwise. The same order applies to
// GetVersion and GetAddress so every read site agrees.
func (i *IDL) GetName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Metadata != nil && i.Metadata.Name != "" {
		return i.Metadata.Name
	}
	return DefaultName
}

// GetVersion resolves the program version under the same order as GetName.
func (i *IDL) GetVersion() string {
	if i.Version != "" {
		return i.Version
	}
	if i.Metadata != nil && i.Metadata.Version != "" {
		return i.Metadata.Version
	}
	return DefaultVersion
}

// GetAddress resolves the program address, empty when neither form carries
// one.
func (i *IDL) GetAddress() string {
	if i.Address != "" {
		return i.Address
	}
	if i.Metadata != nil && i.Metadata.Address != "" {
		return i.Metadata.Address
	}
	return ""
}

// SetAddress writes the resolved address back onto the schema. The
// top-level field is authoritative, so overrides always land there.
func (i *IDL) SetAddress(addr string) {
	i.Address = addr
}

// Discriminator is the 8-byte tag prefixed to every encoded account,
// instruction, and event payload. The JSON form is an array of exactly
// eight integers in 0..255.
type Discriminator [8]byte

// UnmarshalJSON accepts the IDL array form of a discriminator.
func (d *Discriminator) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("discriminator must be an array of integers: %w", err)
	}
	if len(raw) != 8 {
		return fmt.Errorf("discriminator must have exactly 8 bytes, got %d", len(raw))
	}
	for idx, b := range raw {
		if b < 0 || b > 255 {
			return fmt.Errorf("discriminator byte %d out of range: %d", idx, b)
		}
		d[idx] = byte(b)
	}
	return nil
}

// MarshalJSON emits the array form.
func (d Discriminator) MarshalJSON() ([]byte, error) {
	raw := make([]int, 8)
	for i, b := range d {
		raw[i] = int(b)
	}
	return json.Marshal(raw)
}

// IsZero reports whether every byte of the tag is zero.
func (d Discriminator) IsZero() bool {
	return d == Discriminator{}
}

// Instruction is one program instruction: ordered account references and
// typed arguments, optionally tagged with an explicit discriminator.
type Instruction struct {
	Name          string         `json:"name"`
	Docs          []string       `json:"docs,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Accounts      []AccountRef   `json:"accounts"`
	Args          []Field        `json:"args"`
}

// AccountRef is an account slot of an instruction. The legacy dialect
// spells the flags isSigner/isMut, the modern dialect signer/writable;
// both normalize here.
type AccountRef struct {
	Name     string   `json:"name"`
	Docs     []string `json:"docs,omitempty"`
	Signer   bool     `json:"signer,omitempty"`
	Writable bool     `json:"writable,omitempty"`
	Optional bool     `json:"optional,omitempty"`
	Address  string   `json:"address,omitempty"`
	PDA      *PDA     `json:"pda,omitempty"`
}

// UnmarshalJSON folds the legacy flag aliases into the canonical fields.
func (a *AccountRef) UnmarshalJSON(data []byte) error {
	type accountRefJSON struct {
		Name     string   `json:"name"`
		Docs     []string `json:"docs"`
		Signer   bool     `json:"signer"`
		IsSigner bool     `json:"isSigner"`
		Writable bool     `json:"writable"`
		IsMut    bool     `json:"isMut"`
		Optional bool     `json:"optional"`
		Address  string   `json:"address"`
		PDA      *PDA     `json:"pda"`
	}
	var raw accountRefJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Name = raw.Name
	a.Docs = raw.Docs
	a.Signer = raw.Signer || raw.IsSigner
	a.Writable = raw.Writable || raw.IsMut
	a.Optional = raw.Optional
	a.Address = raw.Address
	a.PDA = raw.PDA
	return nil
}

// PDA describes a program-derived address attached to an account slot.
type PDA struct {
	Seeds   []Seed `json:"seeds"`
	Program *Seed  `json:"program,omitempty"`
}

// Seed is one PDA seed: a constant byte string, an instruction argument
// path, or an account path.
type Seed struct {
	Kind  string `json:"kind"` // "const", "arg", "account"
	Value []int  `json:"value,omitempty"`
	Path  string `json:"path,omitempty"`
}

// PayloadSource tags where a declaration's payload type comes from after
// normalization: an inline body (legacy dialect) or a same-named entry in
// the types list (modern dialect). Downstream codegen never re-detects the
// dialect.
type PayloadSource int

const (
	PayloadInline PayloadSource = iota
	PayloadByName
)

func (p PayloadSource) String() string {
	if p == PayloadInline {
		return "inline"
	}
	return "by-name-reference"
}

// Account is an account declaration. Legacy IDLs inline the type body;
// modern IDLs only name the account and declare the payload under types.
type Account struct {
	Name          string         `json:"name"`
	Docs          []string       `json:"docs,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Type          *TypeDefBody   `json:"type,omitempty"`

	// Source is resolved once during normalization.
	Source PayloadSource `json:"-"`
}

// Event is an event declaration, inline-field (legacy) or by-name (modern).
type Event struct {
	Name          string         `json:"name"`
	Docs          []string       `json:"docs,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Fields        []EventField   `json:"fields,omitempty"`

	Source PayloadSource `json:"-"`
}

// EventField is a named event field; index marks fields the program indexes
// for log filtering.
type EventField struct {
	Name  string   `json:"name"`
	Type  TypeExpr `json:"type"`
	Index bool     `json:"index,omitempty"`
}

// ErrorDef is a numeric program error. Name doubles as the message when no
// msg is supplied.
type ErrorDef struct {
	Code int    `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg,omitempty"`
}

// Message returns the human-readable message, falling back to the name.
func (e ErrorDef) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Name
}

// Constant is a named compile-time constant of the program.
type Constant struct {
	Name  string   `json:"name"`
	Type  TypeExpr `json:"type"`
	Value string   `json:"value"`
}

// TypeDef is a named user-defined type with an optional serialization
// strategy tag and layout modifier.
type TypeDef struct {
	Name          string       `json:"name"`
	Docs          []string     `json:"docs,omitempty"`
	Type          TypeDefBody  `json:"type"`
	Serialization string       `json:"serialization,omitempty"`
	Repr          *Repr        `json:"repr,omitempty"`
}

// Repr is the layout modifier carried by fixed-layout types.
type Repr struct {
	Kind   string `json:"kind"`
	Packed bool   `json:"packed,omitempty"`
}

// IsPacked reports whether the type requested a packed layout.
func (t *TypeDef) IsPacked() bool {
	return t.Repr != nil && t.Repr.Packed
}

// Field is a named struct or argument field.
type Field struct {
	Name string   `json:"name"`
	Type TypeExpr `json:"type"`
	Docs []string `json:"docs,omitempty"`
}
