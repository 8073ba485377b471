package ui

import (
	"bytes"
	"strings"
	"testing"

	"snag/internal/note"
)

func testCatalog(t *testing.T) *note.Catalog {
	t.Helper()
	cat, err := note.NewCatalog([]note.Entry{
		{Title: "Defer", Body: "runs last", Illustrations: []note.Illustration{
			{Label: "go", Content: "defer f()\n"},
		}},
		{Title: "Pointers", Body: "method sets"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func TestANSIRenderIncludesAllEntries(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer
	if err := (ANSI{Width: 40}).Render(&buf, cat); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Defer", "Pointers", "defer f()", "go"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Defer") > strings.Index(out, "Pointers") {
		t.Error("entries rendered out of order")
	}
}

func TestANSIRenderDeterministic(t *testing.T) {
	cat := testCatalog(t)
	var a, b bytes.Buffer
	if err := (ANSI{Width: 40}).Render(&a, cat); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := (ANSI{Width: 40}).Render(&b, cat); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("ANSI output differs across identical runs")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"definitely too long", 10, "definitel…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
