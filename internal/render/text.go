package render

import (
	"fmt"
	"io"
	"strings"

	"snag/internal/note"
)

// Text renders the catalog as plain text: titles underlined with
// equals signs, illustrations indented and prefixed with their label.
type Text struct{}

func (Text) Render(w io.Writer, c *note.Catalog) error {
	first := true
	for e := range c.All() {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := writeTextEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writeTextEntry(w io.Writer, e note.Entry) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", e.Title, strings.Repeat("=", len(e.Title))); err != nil {
		return err
	}
	if e.Body != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", e.Body); err != nil {
			return err
		}
	}
	for _, ill := range e.Illustrations {
		label := ill.Label
		if label == "" {
			label = "example"
		}
		if _, err := fmt.Fprintf(w, "\n[%s]\n%s", label, indent(ill.Content)); err != nil {
			return err
		}
	}
	return nil
}

// indent prefixes every non-empty line with four spaces. Content is
// expected to end with a newline; one is added when missing so blocks
// stay line-separated.
func indent(content string) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	var b strings.Builder
	for _, l := range lines {
		if l != "" {
			b.WriteString("    ")
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
