package override

import (
	"encoding/hex"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// OverrideKind identifies which kind of correction was applied.
type OverrideKind int

const (
	KindProgramAddress OverrideKind = iota
	KindAccountDiscriminator
	KindEventDiscriminator
	KindInstructionDiscriminator
)

func (k OverrideKind) String() string {
	switch k {
	case KindProgramAddress:
		return "program address"
	case KindAccountDiscriminator:
		return "account discriminator"
	case KindEventDiscriminator:
		return "event discriminator"
	default:
		return "instruction discriminator"
	}
}

// NoOriginal marks an applied override whose target carried no prior value.
const NoOriginal = "<none>"

// AppliedOverride is the audit record of one correction actually applied:
// created during application, consumed only for reporting.
type AppliedOverride struct {
	Kind OverrideKind

	// EntityName is empty for the program-address override.
	EntityName string

	// Original is the prior value, or NoOriginal when the schema had none.
	Original string

	// New is the value written onto the schema.
	New string
}

// Apply patches a copy of the schema with a validated override document.
// It is pure and total: once Validate has passed, application cannot fail.
// Discriminator overrides are applied in declaration order so the audit
// trail is deterministic.
func Apply(schema *idl.IDL, doc *Document) (*idl.IDL, []AppliedOverride) {
	patched := schema.Clone()
	var applied []AppliedOverride

	if doc.ProgramAddress != "" {
		original := patched.GetAddress()
		if original == "" {
			original = NoOriginal
		}
		patched.SetAddress(doc.ProgramAddress)
		applied = append(applied, AppliedOverride{
			Kind:     KindProgramAddress,
			Original: original,
			New:      doc.ProgramAddress,
		})
	}

	for i := range patched.Accounts {
		acc := &patched.Accounts[i]
		ov, ok := doc.Accounts[acc.Name]
		if !ok {
			continue
		}
		applied = append(applied, AppliedOverride{
			Kind:       KindAccountDiscriminator,
			EntityName: acc.Name,
			Original:   formatDiscriminator(acc.Discriminator),
			New:        formatDiscriminator(&ov.Discriminator),
		})
		d := ov.Discriminator
		acc.Discriminator = &d
	}

	for i := range patched.Events {
		ev := &patched.Events[i]
		ov, ok := doc.Events[ev.Name]
		if !ok {
			continue
		}
		applied = append(applied, AppliedOverride{
			Kind:       KindEventDiscriminator,
			EntityName: ev.Name,
			Original:   formatDiscriminator(ev.Discriminator),
			New:        formatDiscriminator(&ov.Discriminator),
		})
		d := ov.Discriminator
		ev.Discriminator = &d
	}

	for i := range patched.Instructions {
		ix := &patched.Instructions[i]
		ov, ok := doc.Instructions[ix.Name]
		if !ok {
			continue
		}
		applied = append(applied, AppliedOverride{
			Kind:       KindInstructionDiscriminator,
			EntityName: ix.Name,
			Original:   formatDiscriminator(ix.Discriminator),
			New:        formatDiscriminator(&ov.Discriminator),
		})
		d := ov.Discriminator
		ix.Discriminator = &d
	}

	return patched, applied
}

func formatDiscriminator(d *idl.Discriminator) string {
	if d == nil {
		return NoOriginal
	}
	return hex.EncodeToString(d[:])
}
