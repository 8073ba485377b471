// Package render turns a catalog into an output document. Every
// renderer is a pure function over the catalog: the same catalog
// always produces byte-identical output, and entries appear in
// document order.
package render

import (
	"fmt"
	"io"

	"snag/internal/note"
)

// Format selects an output representation.
type Format uint8

const (
	FormatText Format = iota
	FormatHTML
	FormatJSON
	FormatANSI
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatANSI:
		return "ansi"
	}
	return "unknown"
}

// ParseFormat maps a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "ansi":
		return FormatANSI, nil
	}
	return 0, fmt.Errorf("unknown format %q (must be text, html, json or ansi)", s)
}

// Renderer writes a catalog to w.
type Renderer interface {
	Render(w io.Writer, c *note.Catalog) error
}
