package cmd

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mettadata/solana-idl-codegen/internal/config"
	"github.com/mettadata/solana-idl-codegen/internal/errors"
	"github.com/mettadata/solana-idl-codegen/internal/idl"
)

func TestOverrideSearch(t *testing.T) {
	cfg := &config.Config{
		Override: config.OverrideConfig{Dir: "cfg-dir", File: "cfg-file.json"},
	}

	tests := []struct {
		name     string
		flagDir  string
		flagFile string
		wantDir  string
		wantFile string
	}{
		{"flags win over config", "flag-dir", "flag.json", "flag-dir", "flag.json"},
		{"config fills empty flags", "", "", "cfg-dir", "cfg-file.json"},
		{"dir from flag, file from config", "flag-dir", "", "flag-dir", "cfg-file.json"},
		{"file from flag, dir from config", "", "flag.json", "cfg-dir", "flag.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, file := overrideSearch(cfg, tt.flagDir, tt.flagFile)
			if dir != tt.wantDir || file != tt.wantFile {
				t.Errorf("overrideSearch() = (%q, %q); want (%q, %q)",
					dir, file, tt.wantDir, tt.wantFile)
			}
		})
	}

	t.Run("empty config leaves flags empty", func(t *testing.T) {
		dir, file := overrideSearch(config.DefaultConfig(), "", "")
		if dir != "" || file != "" {
			t.Errorf("overrideSearch() = (%q, %q); want empty", dir, file)
		}
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseSchema(t *testing.T) *idl.IDL {
	t.Helper()
	schema, err := idl.Parse([]byte(`{"name": "counter", "version": "0.1.0", "instructions": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return schema
}

func writeOverride(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestResolveOverridesAppliesDiscoveredFile(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, filepath.Join(dir, "overrides", "counter.json"),
		`{"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}`)
	schema := parseSchema(t)

	patched, err := resolveOverrides(discardLogger(), schema, filepath.Join(dir, "counter.json"), dir, "")
	if err != nil {
		t.Fatalf("resolveOverrides() error = %v", err)
	}
	if got := patched.GetAddress(); got != "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA" {
		t.Errorf("GetAddress() = %q; override not applied", got)
	}
	if schema.GetAddress() != "" {
		t.Error("input schema mutated by override application")
	}
}

func TestResolveOverridesNoFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	schema := parseSchema(t)

	patched, err := resolveOverrides(discardLogger(), schema, filepath.Join(dir, "counter.json"), dir, "")
	if err != nil {
		t.Fatalf("resolveOverrides() error = %v", err)
	}
	if patched != schema {
		t.Error("schema replaced despite no override file")
	}
}

func TestResolveOverridesMissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	// A conventional file exists, but the explicit path must never fall
	// back to it.
	writeOverride(t, filepath.Join(dir, "overrides", "counter.json"),
		`{"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}`)
	schema := parseSchema(t)

	_, err := resolveOverrides(discardLogger(), schema, filepath.Join(dir, "counter.json"),
		dir, filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatal("resolveOverrides() error = nil; want missing explicit file error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v; want not-found", err)
	}
}

func TestResolveOverridesConflict(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, filepath.Join(dir, "overrides", "counter.json"),
		`{"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}`)
	writeOverride(t, filepath.Join(dir, "idl-overrides.json"),
		`{"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}`)
	schema := parseSchema(t)

	_, err := resolveOverrides(discardLogger(), schema, filepath.Join(dir, "counter.json"), dir, "")
	if !stderrors.Is(err, errors.NewError(errors.ErrCodeOverrideConflict, "")) {
		t.Errorf("error = %v; want %s", err, errors.ErrCodeOverrideConflict)
	}
}
