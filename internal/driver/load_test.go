package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snag/internal/diag"
	"snag/internal/loader"
)

const goodDoc = `= Defer
Deferred calls run last-in first-out.
----
= Pointers
Value receivers and pointer method sets differ.
`

const badDoc = `= Defer
first
---
= Defer
second
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadGoodDocument(t *testing.T) {
	path := writeDoc(t, "hazards.hz", goodDoc)

	res, err := Load(path, 100)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Err != nil {
		t.Fatalf("res.Err = %v", res.Err)
	}
	if res.Catalog == nil || res.Catalog.Len() != 2 {
		t.Fatalf("catalog = %+v, want 2 entries", res.Catalog)
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %+v", res.Bag.Items())
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := writeDoc(t, "hazards.hz", badDoc)

	res, err := Load(path, 100)
	if err != nil {
		t.Fatalf("Load (io): %v", err)
	}
	if !errors.Is(res.Err, loader.ErrMalformedDocument) {
		t.Fatalf("res.Err = %v, want ErrMalformedDocument", res.Err)
	}
	if res.Catalog != nil {
		t.Error("catalog must be nil for a malformed document")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected diagnostics in the bag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hz"), 100)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), diag.IOReadFailed.ID()) {
		t.Errorf("error = %v, want %s code", err, diag.IOReadFailed.ID())
	}
}

func TestLoadVirtual(t *testing.T) {
	res := LoadVirtual("stdin", []byte(goodDoc), 100)
	if res.Err != nil {
		t.Fatalf("res.Err = %v", res.Err)
	}
	if res.Catalog.Len() != 2 {
		t.Errorf("Len = %d, want 2", res.Catalog.Len())
	}
}
