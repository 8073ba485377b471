package render

import (
	"fmt"
	"html"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"snag/internal/note"
)

// HTML renders the catalog as a standalone HTML document: one
// <section> per entry with a slugged anchor, escaped prose, and
// <pre><code> illustrations tagged with their label.
type HTML struct {
	// Title is used for <title> and the top-level heading.
	// Empty means "Hazard notes".
	Title string
}

func (h HTML) Render(w io.Writer, c *note.Catalog) error {
	title := h.Title
	if title == "" {
		title = "Hazard notes"
	}
	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n<h1>%s</h1>\n",
		html.EscapeString(title), html.EscapeString(title)); err != nil {
		return err
	}
	for e := range c.All() {
		if err := writeHTMLEntry(w, e); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func writeHTMLEntry(w io.Writer, e note.Entry) error {
	if _, err := fmt.Fprintf(w, "<section id=%q>\n<h2>%s</h2>\n",
		Slug(e.Title), html.EscapeString(e.Title)); err != nil {
		return err
	}
	if e.Body != "" {
		for _, para := range strings.Split(e.Body, "\n\n") {
			if _, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(para)); err != nil {
				return err
			}
		}
	}
	for _, ill := range e.Illustrations {
		class := ""
		if ill.Label != "" {
			class = fmt.Sprintf(" class=\"language-%s\"", html.EscapeString(ill.Label))
		}
		if _, err := fmt.Fprintf(w, "<pre><code%s>%s</code></pre>\n",
			class, html.EscapeString(ill.Content)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</section>\n")
	return err
}

// Slug derives a stable anchor from a title: NFKD-normalized,
// lowercased, runs of non-alphanumerics collapsed to single dashes.
func Slug(title string) string {
	decomposed := norm.NFKD.String(title)
	var b strings.Builder
	dash := false
	for _, r := range decomposed {
		switch {
		case unicode.IsLetter(r) && r < 128:
			b.WriteRune(unicode.ToLower(r))
			dash = false
		case unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from decomposition are dropped.
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
