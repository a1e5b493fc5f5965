package override

import (
	"testing"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

func TestApplyAddress(t *testing.T) {
	t.Run("replaces existing address", func(t *testing.T) {
		schema := testSchema(t)
		schema.SetAddress("OldAddr")
		doc := &Document{ProgramAddress: "NewAddr"}

		patched, applied := Apply(schema, doc)
		if got := patched.GetAddress(); got != "NewAddr" {
			t.Errorf("GetAddress() = %q; want NewAddr", got)
		}
		if schema.GetAddress() != "OldAddr" {
			t.Error("Apply mutated the input schema")
		}
		if len(applied) != 1 {
			t.Fatalf("applied = %d records; want 1", len(applied))
		}
		a := applied[0]
		if a.Kind != KindProgramAddress || a.Original != "OldAddr" || a.New != "NewAddr" {
			t.Errorf("audit record = %+v", a)
		}
	})

	t.Run("records none marker when schema had no address", func(t *testing.T) {
		schema := testSchema(t)
		patched, applied := Apply(schema, &Document{ProgramAddress: "NewAddr"})
		if patched.GetAddress() != "NewAddr" {
			t.Error("address not applied")
		}
		if applied[0].Original != NoOriginal {
			t.Errorf("Original = %q; want %q", applied[0].Original, NoOriginal)
		}
	})
}

func TestApplyDiscriminators(t *testing.T) {
	schema := testSchema(t)
	orig := idl.Discriminator{255, 176, 4, 245, 188, 253, 124, 25}
	schema.Accounts[0].Discriminator = &orig

	doc := &Document{
		Accounts:     map[string]DiscriminatorOverride{"Counter": {Discriminator: validTag()}},
		Events:       map[string]DiscriminatorOverride{"Incremented": {Discriminator: validTag()}},
		Instructions: map[string]DiscriminatorOverride{"initialize": {Discriminator: validTag()}},
	}

	patched, applied := Apply(schema, doc)

	if got := *patched.Accounts[0].Discriminator; got != validTag() {
		t.Errorf("account discriminator = %v; want override", got)
	}
	if got := *patched.Events[0].Discriminator; got != validTag() {
		t.Errorf("event discriminator = %v; want override", got)
	}
	if got := *patched.Instructions[0].Discriminator; got != validTag() {
		t.Errorf("instruction discriminator = %v; want override", got)
	}
	if schema.Events[0].Discriminator != nil {
		t.Error("Apply mutated the input schema's events")
	}

	if len(applied) != 3 {
		t.Fatalf("applied = %d records; want 3", len(applied))
	}
	byKind := map[OverrideKind]AppliedOverride{}
	for _, a := range applied {
		byKind[a.Kind] = a
	}
	acc := byKind[KindAccountDiscriminator]
	if acc.EntityName != "Counter" || acc.Original != "ffb004f5bcfd7c19" {
		t.Errorf("account audit = %+v; want hex original", acc)
	}
	if acc.New != "0102030405060708" {
		t.Errorf("account audit new = %q", acc.New)
	}
	ev := byKind[KindEventDiscriminator]
	if ev.EntityName != "Incremented" || ev.Original != NoOriginal {
		t.Errorf("event audit = %+v; want none marker", ev)
	}
	ix := byKind[KindInstructionDiscriminator]
	if ix.EntityName != "initialize" {
		t.Errorf("instruction audit = %+v", ix)
	}
}

func TestApplyUntouchedEntities(t *testing.T) {
	schema := testSchema(t)
	doc := &Document{ProgramAddress: "Addr"}
	patched, applied := Apply(schema, doc)
	if len(applied) != 1 {
		t.Fatalf("applied = %d; want address only", len(applied))
	}
	if patched.Accounts[0].Discriminator != nil {
		t.Error("account gained a discriminator without an override")
	}
}
