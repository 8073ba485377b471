// Package loader parses hazard documents into note catalogs.
//
// The document grammar has two delimiter levels. Entries are separated
// by a line of three or more dashes. Inside an entry the first
// non-blank line must be a title line ("= Title"); fenced blocks
// opened by a line starting with ``` (optional trailing label) and
// closed by a line of exactly ``` hold illustration text. Fence
// content is opaque: separator and title markers inside a fence are
// payload, not structure.
package loader

import (
	"errors"
	"fmt"
	"strings"

	"snag/internal/diag"
	"snag/internal/note"
	"snag/internal/source"
)

// ErrMalformedDocument is returned when the document violates the
// grammar. Details are emitted to the configured Reporter; no partial
// catalog is produced.
var ErrMalformedDocument = errors.New("malformed hazard document")

// Options configures a load pass.
type Options struct {
	// Reporter receives structural findings. Nil discards them.
	Reporter diag.Reporter
}

// Load parses one normalized document into a catalog. On any
// structural error it returns (nil, ErrMalformedDocument) after
// reporting every finding it could collect.
func Load(file *source.File, opts Options) (*note.Catalog, error) {
	ld := &loader{
		file:     file,
		lines:    newLineScanner(file),
		reporter: opts.Reporter,
		firstUse: make(map[string]source.Span),
	}
	ld.run()

	if ld.failed {
		return nil, ErrMalformedDocument
	}
	if len(ld.entries) == 0 {
		ld.report(diag.DocEmptyDocument, source.Span{File: file.ID}, "document contains no entries")
		return nil, ErrMalformedDocument
	}

	cat, err := note.NewCatalog(ld.entries)
	if err != nil {
		// Unreachable when duplicate tracking above is correct.
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return cat, nil
}

type loader struct {
	file     *source.File
	lines    *lineScanner
	reporter diag.Reporter
	entries  []note.Entry
	firstUse map[string]source.Span
	failed   bool
}

func (ld *loader) report(code diag.Code, span source.Span, msg string, notes ...diag.Note) {
	ld.failed = true
	if ld.reporter != nil {
		ld.reporter.Report(code, diag.SevError, span, msg, notes)
	}
}

// run walks the document segment by segment. A failed segment is
// skipped up to the next separator so later entries still get checked.
func (ld *loader) run() {
	for {
		entry, ok, more := ld.scanEntry()
		if ok {
			ld.addEntry(entry)
		}
		if !more {
			return
		}
	}
}

func (ld *loader) addEntry(entry note.Entry) {
	if prev, dup := ld.firstUse[entry.Title]; dup {
		ld.report(diag.DocDuplicateTitle, entry.Span,
			fmt.Sprintf("entry title %q already used", entry.Title),
			diag.Note{Span: prev, Msg: "first used here"})
		return
	}
	ld.firstUse[entry.Title] = entry.Span
	ld.entries = append(ld.entries, entry)
}

// scanEntry consumes one segment. ok reports whether a well-formed
// entry was produced; more reports whether input remains.
func (ld *loader) scanEntry() (entry note.Entry, ok bool, more bool) {
	// Skip blank lines and leading separators.
	for {
		line, _, exists := ld.lines.peek()
		if !exists {
			return note.Entry{}, false, false
		}
		if isBlank(line) || isSeparator(line) {
			ld.lines.next()
			continue
		}
		break
	}

	titleLine, titleSpan, _ := ld.lines.next()
	title, isTitle := parseTitle(titleLine)
	if !isTitle {
		ld.report(diag.DocMissingTitle, titleSpan,
			"entry must start with a title line (\"= Title\")")
		ld.skipSegment()
		return note.Entry{}, false, !ld.lines.done()
	}
	if title == "" {
		ld.report(diag.DocEmptyTitle, titleSpan, "entry title is empty")
		ld.skipSegment()
		return note.Entry{}, false, !ld.lines.done()
	}

	entry = note.Entry{Title: title, Span: titleSpan}
	var body []string

	for {
		line, span, exists := ld.lines.peek()
		if !exists || isSeparator(line) {
			if exists {
				ld.lines.next() // consume the separator
			}
			break
		}
		ld.lines.next()

		if label, open := parseFenceOpen(line); open {
			ill, terminated := ld.scanIllustration(label, span)
			if !terminated {
				return note.Entry{}, false, false
			}
			entry.Illustrations = append(entry.Illustrations, ill)
			continue
		}
		body = append(body, line)
	}

	entry.Body = trimBody(body)
	return entry, true, !ld.lines.done()
}

// scanIllustration consumes fence content up to the closing fence.
// Everything inside is payload, including separator-looking lines.
func (ld *loader) scanIllustration(label string, openSpan source.Span) (note.Illustration, bool) {
	var content strings.Builder
	for {
		line, _, exists := ld.lines.next()
		if !exists {
			ld.report(diag.DocUnterminatedIllustration, openSpan,
				"illustration block is never closed")
			return note.Illustration{}, false
		}
		if isFenceClose(line) {
			return note.Illustration{Label: label, Content: content.String()}, true
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
}

// skipSegment advances past the current segment after an error,
// consuming its separator.
func (ld *loader) skipSegment() {
	for {
		line, _, exists := ld.lines.next()
		if !exists || isSeparator(line) {
			return
		}
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isSeparator matches a line of three or more dashes and nothing else.
func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) < 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return false
		}
	}
	return true
}

// parseTitle recognises "= Title" lines. A bare "=" yields an empty
// title, which the caller rejects.
func parseTitle(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "=") {
		return "", false
	}
	rest := s[1:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		// "=x" is prose, not a title marker.
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func parseFenceOpen(line string) (label string, ok bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "```") {
		return "", false
	}
	return strings.TrimSpace(s[3:]), true
}

func isFenceClose(line string) bool {
	return strings.TrimSpace(line) == "```"
}

// trimBody joins prose lines, dropping blank lines at both edges but
// keeping interior ones.
func trimBody(lines []string) string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	if start == end {
		return ""
	}
	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, strings.TrimRight(l, " \t"))
	}
	return strings.Join(out, "\n")
}
