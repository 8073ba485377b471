// Package note defines the hazard-note data model: immutable entries
// collected into an ordered, title-unique catalog.
package note

import (
	"snag/internal/source"
)

// Illustration is one inert code block attached to an entry. Content
// is opaque text; it is shown to the reader, never parsed or executed.
type Illustration struct {
	Label   string // source dialect, purely descriptive ("go", "text", ...)
	Content string
}

// Entry is one self-contained hazard note.
type Entry struct {
	Title         string
	Body          string
	Illustrations []Illustration
	// Span covers the title line in the source document.
	Span source.Span
}
