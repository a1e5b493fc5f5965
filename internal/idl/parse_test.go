package idl

import (
	"strings"
	"testing"
)

const legacyIDL = `{
	"version": "0.1.0",
	"name": "counter",
	"instructions": [
		{
			"name": "initialize",
			"accounts": [
				{"name": "counter", "isMut": true, "isSigner": false},
				{"name": "payer", "isMut": true, "isSigner": true}
			],
			"args": [{"name": "start_value", "type": "u64"}]
		}
	],
	"accounts": [
		{
			"name": "Counter",
			"type": {
				"kind": "struct",
				"fields": [
					{"name": "count", "type": "u64"},
					{"name": "authority", "type": "publicKey"}
				]
			}
		}
	],
	"events": [
		{
			"name": "Incremented",
			"fields": [
				{"name": "count", "type": "u64", "index": true}
			]
		}
	],
	"errors": [
		{"code": 6000, "name": "Overflow", "msg": "counter overflowed"},
		{"code": 6001, "name": "Unauthorized"}
	]
}`

const modernIDL = `{
	"address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
	"metadata": {"name": "counter", "version": "0.2.0", "spec": "0.1.0"},
	"instructions": [
		{
			"name": "initialize",
			"discriminator": [175, 175, 109, 31, 13, 152, 155, 237],
			"accounts": [
				{"name": "counter", "writable": true},
				{"name": "payer", "writable": true, "signer": true}
			],
			"args": [{"name": "start_value", "type": "u64"}]
		}
	],
	"accounts": [
		{
			"name": "Counter",
			"discriminator": [255, 176, 4, 245, 188, 253, 124, 25]
		}
	],
	"types": [
		{
			"name": "Counter",
			"type": {
				"kind": "struct",
				"fields": [
					{"name": "count", "type": "u64"},
					{"name": "authority", "type": "pubkey"}
				]
			}
		}
	]
}`

func TestParseLegacyDialect(t *testing.T) {
	schema, err := Parse([]byte(legacyIDL))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := schema.GetName(); got != "counter" {
		t.Errorf("GetName() = %q; want %q", got, "counter")
	}
	if got := schema.GetVersion(); got != "0.1.0" {
		t.Errorf("GetVersion() = %q; want %q", got, "0.1.0")
	}
	if got := schema.GetAddress(); got != "" {
		t.Errorf("GetAddress() = %q; want empty", got)
	}

	ix := schema.Instructions[0]
	if ix.Discriminator != nil {
		t.Error("legacy instruction should carry no explicit discriminator")
	}
	if !ix.Accounts[0].Writable || ix.Accounts[0].Signer {
		t.Errorf("account[0] flags = writable:%v signer:%v; want writable only",
			ix.Accounts[0].Writable, ix.Accounts[0].Signer)
	}
	if !ix.Accounts[1].Writable || !ix.Accounts[1].Signer {
		t.Errorf("account[1] flags = writable:%v signer:%v; want both",
			ix.Accounts[1].Writable, ix.Accounts[1].Signer)
	}

	acc := schema.Accounts[0]
	if acc.Source != PayloadInline {
		t.Errorf("account source = %v; want inline", acc.Source)
	}
	if acc.Type == nil || len(acc.Type.Fields) != 2 {
		t.Fatal("inline account body not parsed")
	}

	ev := schema.Events[0]
	if ev.Source != PayloadInline {
		t.Errorf("event source = %v; want inline", ev.Source)
	}
	if !ev.Fields[0].Index {
		t.Error("event field index flag lost")
	}

	if got := schema.Errors[0].Message(); got != "counter overflowed" {
		t.Errorf("Message() = %q; want msg", got)
	}
	if got := schema.Errors[1].Message(); got != "Unauthorized" {
		t.Errorf("Message() = %q; want name fallback", got)
	}
}

func TestParseModernDialect(t *testing.T) {
	schema, err := Parse([]byte(modernIDL))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := schema.GetName(); got != "counter" {
		t.Errorf("GetName() = %q; want %q", got, "counter")
	}
	if got := schema.GetVersion(); got != "0.2.0" {
		t.Errorf("GetVersion() = %q; want %q", got, "0.2.0")
	}
	if got := schema.GetAddress(); got != "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA" {
		t.Errorf("GetAddress() = %q", got)
	}

	ix := schema.Instructions[0]
	if ix.Discriminator == nil || ix.Discriminator[0] != 175 {
		t.Fatal("explicit instruction discriminator not parsed")
	}
	if !ix.Accounts[0].Writable || ix.Accounts[0].Signer {
		t.Error("modern writable flag not parsed")
	}

	acc := schema.Accounts[0]
	if acc.Source != PayloadByName {
		t.Errorf("account source = %v; want by-name", acc.Source)
	}
	if acc.Type != nil {
		t.Error("by-name account should carry no inline body")
	}
	if _, ok := schema.TypeByName("Counter"); !ok {
		t.Error("types entry for by-name account missing")
	}
}

func TestResolutionOrderTopLevelWins(t *testing.T) {
	data := `{
		"name": "top",
		"version": "1.0.0",
		"address": "TopAddr",
		"metadata": {"name": "meta", "version": "2.0.0", "address": "MetaAddr"},
		"instructions": []
	}`
	schema, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := schema.GetName(); got != "top" {
		t.Errorf("GetName() = %q; want top-level value", got)
	}
	if got := schema.GetVersion(); got != "1.0.0" {
		t.Errorf("GetVersion() = %q; want top-level value", got)
	}
	if got := schema.GetAddress(); got != "TopAddr" {
		t.Errorf("GetAddress() = %q; want top-level value", got)
	}
}

func TestResolutionDefaults(t *testing.T) {
	schema, err := Parse([]byte(`{"instructions": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := schema.GetName(); got != DefaultName {
		t.Errorf("GetName() = %q; want %q", got, DefaultName)
	}
	if got := schema.GetVersion(); got != DefaultVersion {
		t.Errorf("GetVersion() = %q; want %q", got, DefaultVersion)
	}
}

func TestParseMissingInstructionsNormalizes(t *testing.T) {
	schema, err := Parse([]byte(`{"name": "empty"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if schema.Instructions == nil || len(schema.Instructions) != 0 {
		t.Errorf("Instructions = %v; want empty slice", schema.Instructions)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"name": `},
		{"short discriminator", `{"instructions": [{"name": "a", "discriminator": [1, 2], "accounts": [], "args": []}]}`},
		{"discriminator out of range", `{"instructions": [{"name": "a", "discriminator": [0,0,0,0,0,0,0,300], "accounts": [], "args": []}]}`},
		{"unknown type kind", `{"instructions": [], "types": [{"name": "T", "type": {"kind": "union"}}]}`},
		{"bad array arity", `{"instructions": [{"name": "a", "accounts": [], "args": [{"name": "x", "type": {"array": ["u8"]}}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() succeeded; want error")
			}
		})
	}
}

func TestTypeExprForms(t *testing.T) {
	data := `{
		"instructions": [],
		"types": [{
			"name": "Kitchen",
			"type": {
				"kind": "struct",
				"fields": [
					{"name": "a", "type": "u64"},
					{"name": "b", "type": {"vec": "u8"}},
					{"name": "c", "type": {"option": {"defined": "Other"}}},
					{"name": "d", "type": {"array": ["u16", 4]}},
					{"name": "e", "type": {"defined": {"name": "Nested"}}}
				]
			}
		}]
	}`
	schema, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fields := schema.Types[0].Type.Fields
	if fields[0].Type.Scalar != "u64" {
		t.Errorf("field a = %+v; want scalar u64", fields[0].Type)
	}
	if fields[1].Type.Vec == nil || fields[1].Type.Vec.Scalar != "u8" {
		t.Errorf("field b = %+v; want vec of u8", fields[1].Type)
	}
	if fields[2].Type.Option == nil || fields[2].Type.Option.Defined != "Other" {
		t.Errorf("field c = %+v; want option of defined Other", fields[2].Type)
	}
	if fields[3].Type.Array == nil || fields[3].Type.Array.Len != 4 || fields[3].Type.Array.Elem.Scalar != "u16" {
		t.Errorf("field d = %+v; want [4]u16", fields[3].Type)
	}
	if fields[4].Type.Defined != "Nested" {
		t.Errorf("field e = %+v; want defined Nested", fields[4].Type)
	}
}

func TestEnumVariantShapes(t *testing.T) {
	data := `{
		"instructions": [],
		"types": [{
			"name": "Action",
			"type": {
				"kind": "enum",
				"variants": [
					{"name": "Noop"},
					{"name": "Transfer", "fields": [{"name": "amount", "type": "u64"}]},
					{"name": "Pair", "fields": ["u8", "u8"]}
				]
			}
		}]
	}`
	schema, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	variants := schema.Types[0].Type.Variants
	if len(variants[0].Fields) != 0 || len(variants[0].Tuple) != 0 {
		t.Error("bare variant should carry no payload")
	}
	if len(variants[1].Fields) != 1 || variants[1].Fields[0].Name != "amount" {
		t.Errorf("named variant = %+v", variants[1])
	}
	if len(variants[2].Tuple) != 2 || variants[2].Tuple[0].Scalar != "u8" {
		t.Errorf("tuple variant = %+v", variants[2])
	}
}

func TestFixedLayoutTags(t *testing.T) {
	data := `{
		"instructions": [],
		"types": [{
			"name": "Raw",
			"serialization": "bytemuck",
			"repr": {"kind": "c", "packed": true},
			"type": {"kind": "struct", "fields": [{"name": "x", "type": "u32"}]}
		}]
	}`
	schema, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	td := schema.Types[0]
	if td.Serialization != "bytemuck" {
		t.Errorf("Serialization = %q", td.Serialization)
	}
	if !td.IsPacked() {
		t.Error("IsPacked() = false; want true")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	schema, err := Parse([]byte(modernIDL))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	clone := schema.Clone()
	clone.SetAddress("other")
	d := Discriminator{9, 9, 9, 9, 9, 9, 9, 9}
	clone.Accounts[0].Discriminator = &d

	if schema.GetAddress() == "other" {
		t.Error("clone mutation leaked into the original address")
	}
	if schema.Accounts[0].Discriminator[0] == 9 {
		t.Error("clone mutation leaked into the original discriminator")
	}
	if clone.Accounts[0].Source != PayloadByName {
		t.Error("clone lost payload source normalization")
	}
}

func TestParseErrorCarriesPath(t *testing.T) {
	_, err := Parse([]byte(`{"instructions": "nope"}`))
	if err == nil {
		t.Fatal("Parse() succeeded; want error")
	}
	if !strings.Contains(err.Error(), "schema parse error") {
		t.Errorf("error = %v; want schema parse error prefix", err)
	}
}
