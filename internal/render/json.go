package render

import (
	"encoding/json"
	"io"

	"snag/internal/note"
)

// JSON renders the catalog as an indented JSON document. Field order
// is fixed by the payload structs, so output stays byte-stable.
type JSON struct{}

type jsonIllustration struct {
	Label   string `json:"label,omitempty"`
	Content string `json:"content"`
}

type jsonEntry struct {
	Title         string             `json:"title"`
	Body          string             `json:"body,omitempty"`
	Illustrations []jsonIllustration `json:"illustrations,omitempty"`
}

type jsonCatalog struct {
	Entries []jsonEntry `json:"entries"`
}

func (JSON) Render(w io.Writer, c *note.Catalog) error {
	payload := jsonCatalog{Entries: make([]jsonEntry, 0, c.Len())}
	for e := range c.All() {
		je := jsonEntry{Title: e.Title, Body: e.Body}
		for _, ill := range e.Illustrations {
			je.Illustrations = append(je.Illustrations, jsonIllustration{
				Label:   ill.Label,
				Content: ill.Content,
			})
		}
		payload.Entries = append(payload.Entries, je)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
