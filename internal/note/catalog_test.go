package note

import (
	"errors"
	"testing"
)

func sampleEntries() []Entry {
	return []Entry{
		{Title: "Defer", Body: "runs last-in first-out"},
		{Title: "Pointers", Body: "method sets differ", Illustrations: []Illustration{
			{Label: "go", Content: "type T struct{}\n"},
		}},
		{Title: "Shadowing", Body: "short declarations open a new scope"},
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	entries := []Entry{
		{Title: "Defer", Body: "first"},
		{Title: "Defer", Body: "second"},
	}
	_, err := NewCatalog(entries)
	if err == nil {
		t.Fatal("expected duplicate title error")
	}
	var dup *DuplicateTitleError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateTitleError", err)
	}
	if dup.Title != "Defer" {
		t.Errorf("duplicate title = %q, want %q", dup.Title, "Defer")
	}
}

func TestNewCatalogRejectsEmptyTitle(t *testing.T) {
	if _, err := NewCatalog([]Entry{{Title: ""}}); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestLookup(t *testing.T) {
	cat, err := NewCatalog(sampleEntries())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	e, err := cat.Lookup("Pointers")
	if err != nil {
		t.Fatalf("Lookup(Pointers): %v", err)
	}
	if len(e.Illustrations) != 1 || e.Illustrations[0].Label != "go" {
		t.Errorf("unexpected illustrations: %+v", e.Illustrations)
	}

	_, err = cat.Lookup("Nonexistent")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup(Nonexistent) error = %v, want *NotFoundError", err)
	}
	if nf.Title != "Nonexistent" {
		t.Errorf("NotFoundError.Title = %q", nf.Title)
	}
}

func TestLookupCoversAll(t *testing.T) {
	cat, err := NewCatalog(sampleEntries())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	for e := range cat.All() {
		if _, err := cat.Lookup(e.Title); err != nil {
			t.Errorf("Lookup(%q) failed for a title yielded by All: %v", e.Title, err)
		}
	}
}

func TestAllPreservesOrder(t *testing.T) {
	cat, err := NewCatalog(sampleEntries())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	want := []string{"Defer", "Pointers", "Shadowing"}
	var got []string
	for e := range cat.All() {
		got = append(got, e.Title)
	}
	if len(got) != len(want) {
		t.Fatalf("All yielded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	cat, err := NewCatalog(sampleEntries())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	seq := cat.All()

	// Break out of the first pass early, then range again in full.
	for range seq {
		break
	}
	count := 0
	for range seq {
		count++
	}
	if count != cat.Len() {
		t.Errorf("second range yielded %d entries, want %d", count, cat.Len())
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	entries := sampleEntries()
	cat, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	entries[0].Title = "Mutated"

	if _, err := cat.Lookup("Defer"); err != nil {
		t.Error("catalog should be unaffected by caller mutation")
	}
}
