package diagfmt

import (
	"strings"
	"testing"

	"snag/internal/diag"
	"snag/internal/source"
)

func TestPrettyFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("hazards.hz", []byte("= Defer\n= Defer\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.DocDuplicateTitle,
		Message:  `entry title "Defer" already used`,
		Primary:  source.Span{File: id, Start: 8, End: 15},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 7}, Msg: "first used here"},
		},
	})

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{ShowNotes: true, Context: true})
	out := b.String()

	wantLines := []string{
		`hazards.hz:2:1: ERROR DOC1003: entry title "Defer" already used`,
		"  = Defer",
		"  ^~~~~~~",
		"  note: hazards.hz:1:1: first used here",
	}
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("output has %d lines, want %d:\n%s", len(got), len(wantLines), out)
	}
	for i := range wantLines {
		if got[i] != wantLines[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], wantLines[i])
		}
	}
}

func TestPrettyWithoutContextOrNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("hazards.hz", []byte("prose only\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.DocMissingTitle,
		Message:  "entry must start with a title line",
		Primary:  source.Span{File: id, Start: 0, End: 10},
	})

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one line, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "hazards.hz:1:1: ERROR DOC1001:") {
		t.Errorf("unexpected prefix: %q", out)
	}
}
