package diag

import (
	"snag/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. the first
// occurrence of a duplicated title.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding about a hazard document.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
