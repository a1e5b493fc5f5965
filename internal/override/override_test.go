package override

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	const doc = `{"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}`

	t.Run("not found", func(t *testing.T) {
		dir := t.TempDir()
		got := Discover(dir, "counter", "")
		if got.State != NotFound {
			t.Errorf("State = %v; want not-found", got.State)
		}
	})

	t.Run("convention match", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "overrides", "counter.json")
		writeFile(t, path, doc)
		got := Discover(dir, "counter", "")
		if got.State != Found || got.Path != path {
			t.Errorf("Discover = %+v; want found at %s", got, path)
		}
	})

	t.Run("global fallback", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "idl-overrides.json")
		writeFile(t, path, doc)
		got := Discover(dir, "counter", "")
		if got.State != Found || got.Path != path {
			t.Errorf("Discover = %+v; want found at %s", got, path)
		}
	})

	t.Run("conflict on multiple matches", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "overrides", "counter.json"), doc)
		writeFile(t, filepath.Join(dir, "idl-overrides.json"), doc)
		got := Discover(dir, "counter", "")
		if got.State != Conflict {
			t.Fatalf("State = %v; want conflict", got.State)
		}
		if len(got.Candidates) != 2 || len(got.Sources) != 2 {
			t.Errorf("Candidates = %v, Sources = %v; want two of each", got.Candidates, got.Sources)
		}
	})

	t.Run("explicit path wins over conventions", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "overrides", "counter.json"), doc)
		writeFile(t, filepath.Join(dir, "idl-overrides.json"), doc)
		explicit := filepath.Join(dir, "fixes.json")
		writeFile(t, explicit, doc)
		got := Discover(dir, "counter", explicit)
		if got.State != Found || got.Path != explicit {
			t.Errorf("Discover = %+v; want explicit path", got)
		}
	})

	t.Run("missing explicit path does not fall back", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "overrides", "counter.json"), doc)
		got := Discover(dir, "counter", filepath.Join(dir, "missing.json"))
		if got.State != NotFound {
			t.Errorf("State = %v; want not-found, no fallback", got.State)
		}
	})

	t.Run("directory is not a match", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "idl-overrides.json"), 0o755); err != nil {
			t.Fatal(err)
		}
		got := Discover(dir, "counter", "")
		if got.State != NotFound {
			t.Errorf("State = %v; want not-found for directory", got.State)
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ov.json")
	writeFile(t, path, `{
		"program_address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		"accounts": {"Counter": {"discriminator": [1, 2, 3, 4, 5, 6, 7, 8]}}
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.ProgramAddress == "" {
		t.Error("program address not loaded")
	}
	ov, ok := doc.Accounts["Counter"]
	if !ok || ov.Discriminator[0] != 1 || ov.Discriminator[7] != 8 {
		t.Errorf("account override = %+v", doc.Accounts)
	}

	if _, err := Load(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("Load() of missing file succeeded; want error")
	}

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"accounts": `)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed file succeeded; want error")
	}
}

func TestDocumentIsEmpty(t *testing.T) {
	if !(&Document{}).IsEmpty() {
		t.Error("empty document reported non-empty")
	}
	if (&Document{ProgramAddress: "x"}).IsEmpty() {
		t.Error("address-only document reported empty")
	}
	if (&Document{Events: map[string]DiscriminatorOverride{"E": {}}}).IsEmpty() {
		t.Error("event-only document reported empty")
	}
}
