package note

import (
	"fmt"
	"iter"
)

// Catalog is the ordered, title-unique collection of entries loaded
// from one document. It is read-only after construction.
type Catalog struct {
	entries []Entry
	byTitle map[string]int
}

// NotFoundError reports a lookup for a title the catalog does not hold.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry titled %q", e.Title)
}

// DuplicateTitleError reports an attempt to build a catalog with two
// entries sharing a title.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("duplicate entry title %q", e.Title)
}

// NewCatalog builds a catalog from entries in the given order.
// It fails on empty or repeated titles; entries are copied so later
// mutation of the argument cannot reach the catalog.
func NewCatalog(entries []Entry) (*Catalog, error) {
	byTitle := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Title == "" {
			return nil, fmt.Errorf("entry %d has an empty title", i)
		}
		if _, dup := byTitle[e.Title]; dup {
			return nil, &DuplicateTitleError{Title: e.Title}
		}
		byTitle[e.Title] = i
	}
	own := make([]Entry, len(entries))
	copy(own, entries)
	return &Catalog{entries: own, byTitle: byTitle}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry with the given title or *NotFoundError.
func (c *Catalog) Lookup(title string) (Entry, error) {
	i, ok := c.byTitle[title]
	if !ok {
		return Entry{}, &NotFoundError{Title: title}
	}
	return c.entries[i], nil
}

// All yields entries in document order. The sequence is restartable:
// every range over it starts from the first entry again.
func (c *Catalog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Titles returns entry titles in document order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Title
	}
	return out
}
