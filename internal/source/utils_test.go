package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"no carriage returns", "= Defer\nbody\n", "= Defer\nbody\n", false},
		{"crlf pairs", "= Defer\r\nbody\r\n", "= Defer\nbody\n", true},
		{"lone cr kept", "a\rb\n", "a\rb\n", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, '=', ' ', 'D'}
	got, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(got) != "= D" {
		t.Errorf("content after BOM removal = %q, want %q", got, "= D")
	}

	plain := []byte("= D")
	got, had = removeBOM(plain)
	if had {
		t.Error("did not expect BOM in plain content")
	}
	if string(got) != "= D" {
		t.Errorf("plain content changed to %q", got)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("= Defer\nbody line\n\nlast")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{7, LineCol{Line: 1, Col: 8}},  // the newline ends line 1
		{8, LineCol{Line: 2, Col: 1}},  // first byte of line 2
		{12, LineCol{Line: 2, Col: 5}},
		{18, LineCol{Line: 3, Col: 1}}, // blank line
		{19, LineCol{Line: 4, Col: 1}},
		{22, LineCol{Line: 4, Col: 4}},
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := toLineCol(nil, 5)
	want := LineCol{Line: 1, Col: 6}
	if got != want {
		t.Errorf("toLineCol on empty index = %+v, want %+v", got, want)
	}
}
