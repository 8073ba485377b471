package loader

import (
	"snag/internal/source"
)

// lineScanner yields document lines with their spans. It keeps a
// one-line lookahead buffer, mirroring how tokens are usually pulled.
type lineScanner struct {
	file *source.File
	off  uint32
	look *bufferedLine
}

type bufferedLine struct {
	text string
	span source.Span
	next uint32
}

func newLineScanner(file *source.File) *lineScanner {
	return &lineScanner{file: file}
}

// next returns the upcoming line without its newline and advances.
// exists is false once the document is exhausted.
func (ls *lineScanner) next() (text string, span source.Span, exists bool) {
	if ls.look != nil {
		l := *ls.look
		ls.look = nil
		ls.off = l.next
		return l.text, l.span, true
	}
	l, ok := ls.scan(ls.off)
	if !ok {
		return "", source.Span{}, false
	}
	ls.off = l.next
	return l.text, l.span, true
}

// peek returns the upcoming line without consuming it.
func (ls *lineScanner) peek() (text string, span source.Span, exists bool) {
	if ls.look == nil {
		l, ok := ls.scan(ls.off)
		if !ok {
			return "", source.Span{}, false
		}
		ls.look = &l
	}
	return ls.look.text, ls.look.span, true
}

// done reports whether no lines remain.
func (ls *lineScanner) done() bool {
	_, _, exists := ls.peek()
	return !exists
}

func (ls *lineScanner) scan(from uint32) (bufferedLine, bool) {
	content := ls.file.Content
	if from >= uint32(len(content)) {
		return bufferedLine{}, false
	}
	end := from
	for end < uint32(len(content)) && content[end] != '\n' {
		end++
	}
	line := bufferedLine{
		text: string(content[from:end]),
		span: source.Span{File: ls.file.ID, Start: from, End: end},
		next: end,
	}
	if end < uint32(len(content)) {
		line.next = end + 1 // step over the newline
	}
	return line, true
}
