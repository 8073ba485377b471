package diag

import (
	"fmt"
)

// Code identifies one kind of finding. Codes are stable across
// releases so golden files and scripts can match on them.
type Code uint16

const (
	UnknownCode Code = 0

	// Document structure (1000-1999): violations of the hazard
	// document grammar found by the loader.
	DocInfo                     Code = 1000
	DocMissingTitle             Code = 1001
	DocEmptyTitle               Code = 1002
	DocDuplicateTitle           Code = 1003
	DocUnterminatedIllustration Code = 1004
	DocEmptyDocument            Code = 1005

	// Catalog operations (2000-2999).
	CatEntryNotFound Code = 2001

	// IO and project configuration (4000-4999).
	IOReadFailed   Code = 4001
	PrjBadManifest Code = 4101
	PrjNoDocument  Code = 4102
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown issue",

	DocInfo:                     "document note",
	DocMissingTitle:             "entry does not start with a title line",
	DocEmptyTitle:               "entry title is empty",
	DocDuplicateTitle:           "entry title already used",
	DocUnterminatedIllustration: "illustration block is never closed",
	DocEmptyDocument:            "document contains no entries",

	CatEntryNotFound: "no entry with this title",

	IOReadFailed:   "failed to read document",
	PrjBadManifest: "invalid snag.toml manifest",
	PrjNoDocument:  "manifest does not name a document",
}

// ID returns the short stable identifier, e.g. "DOC1003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CAT%04d", ic)
	case ic >= 4000 && ic < 4100:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4100 && ic < 5000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
