package override

import (
	"sort"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/mettadata/solana-idl-codegen/internal/errors"
	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// Entity kinds referenced by validation errors.
const (
	EntityAccount     = "account"
	EntityEvent       = "event"
	EntityInstruction = "instruction"
)

// Validate checks an override document against the schema it targets.
// Each rule maps to a distinct error code:
//
//   - the document must contain at least one override
//   - a program address must decode to 32 base58 bytes
//   - a program address must not be the all-zero system default
//   - no discriminator override may be all zeros
//   - every referenced entity name must exist in the schema
func Validate(doc *Document, schema *idl.IDL) error {
	if doc.IsEmpty() {
		return errors.NewError(errors.ErrCodeOverrideEmpty,
			"empty override file: must contain at least one override")
	}

	if doc.ProgramAddress != "" {
		if err := validateAddress(doc.ProgramAddress); err != nil {
			return err
		}
	}

	if err := validateSection(EntityAccount, doc.Accounts, schema.AccountNames()); err != nil {
		return err
	}
	if err := validateSection(EntityEvent, doc.Events, schema.EventNames()); err != nil {
		return err
	}
	return validateSection(EntityInstruction, doc.Instructions, schema.InstructionNames())
}

func validateAddress(address string) error {
	decoded, err := base58.Decode(address)
	if err != nil || len(decoded) != 32 {
		return errors.Newf(errors.ErrCodeOverrideInvalidAddress,
			"invalid program address %q: must be a base58-encoded 32-byte value", address).
			WithDetails(map[string]any{"address": address})
	}
	if solana.PublicKeyFromBytes(decoded).IsZero() {
		return errors.Newf(errors.ErrCodeOverrideDefaultAddress,
			"invalid program address %q: cannot be the system default address", address).
			WithDetails(map[string]any{"address": address})
	}
	return nil
}

func validateSection(entityKind string, section map[string]DiscriminatorOverride, known []string) error {
	if len(section) == 0 {
		return nil
	}

	// Map iteration order is random; validate names in sorted order so the
	// first reported error is deterministic.
	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)

	knownSet := make(map[string]struct{}, len(known))
	for _, n := range known {
		knownSet[n] = struct{}{}
	}

	for _, name := range names {
		if section[name].Discriminator.IsZero() {
			return errors.Newf(errors.ErrCodeOverrideZeroTag,
				"invalid discriminator for %s %q: cannot be all zeros", entityKind, name).
				WithDetails(map[string]any{"entity_type": entityKind, "entity_name": name})
		}
		if _, ok := knownSet[name]; !ok {
			return errors.Newf(errors.ErrCodeOverrideUnknownEntity,
				"unknown %s %q in override file, available: %s",
				entityKind, name, strings.Join(known, ", ")).
				WithDetails(map[string]any{
					"entity_type": entityKind,
					"entity_name": name,
					"available":   known,
				})
		}
	}
	return nil
}
