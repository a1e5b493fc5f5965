package codegen

import (
	"encoding/binary"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// DeriveDiscriminator produces the positional fallback tag for a
// declaration that carries no explicit discriminator: its declaration
// index encoded as a little-endian 64-bit value. Index 0 yields the
// all-zero tag, index 1 yields {1,0,0,0,0,0,0,0}.
func DeriveDiscriminator(index int) [8]byte {
	var tag [8]byte
	binary.LittleEndian.PutUint64(tag[:], uint64(index))
	return tag
}

// TagSet holds the resolved 8-byte tag of every account, event, and
// instruction. Resolution happens once, before any unit is generated, so
// every generator reads the same values.
type TagSet struct {
	Accounts     map[string][8]byte
	Events       map[string][8]byte
	Instructions map[string][8]byte
}

// ResolveTags resolves every declaration's discriminator: the explicit tag
// when the schema carries one, the positional fallback otherwise.
func ResolveTags(schema *idl.IDL) *TagSet {
	set := &TagSet{
		Accounts:     make(map[string][8]byte, len(schema.Accounts)),
		Events:       make(map[string][8]byte, len(schema.Events)),
		Instructions: make(map[string][8]byte, len(schema.Instructions)),
	}
	for i, acc := range schema.Accounts {
		set.Accounts[acc.Name] = resolveTag(acc.Discriminator, i)
	}
	for i, ev := range schema.Events {
		set.Events[ev.Name] = resolveTag(ev.Discriminator, i)
	}
	for i, ix := range schema.Instructions {
		set.Instructions[ix.Name] = resolveTag(ix.Discriminator, i)
	}
	return set
}

func resolveTag(explicit *idl.Discriminator, index int) [8]byte {
	if explicit != nil {
		return *explicit
	}
	return DeriveDiscriminator(index)
}
