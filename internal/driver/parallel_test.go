package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckPathsMixedResults(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.hz")
	bad := filepath.Join(dir, "bad.hz")
	if err := os.WriteFile(good, []byte(goodDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(badDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := CheckPaths(context.Background(), []string{dir}, 100)
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Sorted by path: bad.hz before good.hz.
	if results[0].Path != bad || results[1].Path != good {
		t.Errorf("paths = [%s %s], want sorted [%s %s]",
			results[0].Path, results[1].Path, bad, good)
	}
	if results[0].Result.Catalog != nil {
		t.Error("bad.hz should have no catalog")
	}
	if results[1].Result.Catalog == nil {
		t.Error("good.hz should have a catalog")
	}
}

func TestCheckPathsSkipsNonHazardFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.hz"), []byte(goodDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := CheckPaths(context.Background(), []string{dir}, 100)
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestCheckPathsExplicitFile(t *testing.T) {
	// Explicitly named files are checked regardless of extension.
	path := writeDoc(t, "notes.txt", goodDoc)
	results, err := CheckPaths(context.Background(), []string{path}, 100)
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if len(results) != 1 || results[0].Result.Catalog == nil {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCheckPathsMissing(t *testing.T) {
	_, err := CheckPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope.hz")}, 100)
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}
