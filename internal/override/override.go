// Package override discovers, validates, and applies IDL correction
// documents: program-address and discriminator overrides supplied next to
// the schema instead of edited into it.
//
// Discovery is convention-based:
//
//	overrides/<idl_name>.json   per-IDL override file
//	idl-overrides.json          global fallback
//	--override-file             explicit path, used exclusively when given
package override

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

// Document is a complete override file for a single IDL.
type Document struct {
	// ProgramAddress is an optional base58 program address override.
	ProgramAddress string `json:"program_address,omitempty"`

	// Accounts maps account name to discriminator override.
	Accounts map[string]DiscriminatorOverride `json:"accounts,omitempty"`

	// Events maps event name to discriminator override.
	Events map[string]DiscriminatorOverride `json:"events,omitempty"`

	// Instructions maps instruction name to discriminator override.
	Instructions map[string]DiscriminatorOverride `json:"instructions,omitempty"`
}

// DiscriminatorOverride carries one corrected 8-byte tag.
type DiscriminatorOverride struct {
	Discriminator idl.Discriminator `json:"discriminator"`
}

// IsEmpty reports whether the document carries no override at all.
func (d *Document) IsEmpty() bool {
	return d.ProgramAddress == "" &&
		len(d.Accounts) == 0 &&
		len(d.Events) == 0 &&
		len(d.Instructions) == 0
}

// Discovery is the outcome of the override file search.
type Discovery struct {
	// State is one of Found, NotFound, Conflict.
	State DiscoveryState

	// Path is the resolved file when State is Found.
	Path string

	// Candidates and Sources list every match when State is Conflict,
	// pairwise: Candidates[i] was found via Sources[i].
	Candidates []string
	Sources    []string
}

// DiscoveryState enumerates discovery outcomes.
type DiscoveryState int

const (
	NotFound DiscoveryState = iota
	Found
	Conflict
)

func (s DiscoveryState) String() string {
	switch s {
	case Found:
		return "found"
	case Conflict:
		return "conflict"
	default:
		return "not-found"
	}
}

// Discovery source labels reported on conflicts.
const (
	sourceExplicit   = "explicit --override-file"
	sourceConvention = "convention-based discovery"
	sourceGlobal     = "global fallback"
)

// Discover locates the override file for the named IDL under dir. An
// explicit path is exclusive: when given, the conventional locations are
// never consulted, and a missing explicit file is NotFound rather than a
// fallback. Otherwise both the per-IDL conventional location and the
// global fallback are checked; more than one match is a Conflict, never an
// automatic choice.
func Discover(dir, idlName, explicitPath string) Discovery {
	if explicitPath != "" {
		if fileExists(explicitPath) {
			return Discovery{State: Found, Path: explicitPath, Sources: []string{sourceExplicit}}
		}
		return Discovery{State: NotFound}
	}

	var candidates, sources []string

	conventionPath := filepath.Join(dir, "overrides", idlName+".json")
	if fileExists(conventionPath) {
		candidates = append(candidates, conventionPath)
		sources = append(sources, sourceConvention)
	}

	globalPath := filepath.Join(dir, "idl-overrides.json")
	if fileExists(globalPath) {
		candidates = append(candidates, globalPath)
		sources = append(sources, sourceGlobal)
	}

	switch len(candidates) {
	case 0:
		return Discovery{State: NotFound}
	case 1:
		return Discovery{State: Found, Path: candidates[0]}
	default:
		return Discovery{State: Conflict, Candidates: candidates, Sources: sources}
	}
}

// Load reads and parses an override document from disk.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse override file %s: %w", path, err)
	}
	return &doc, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
