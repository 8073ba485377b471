// Package diag defines the diagnostic model shared by the loader and
// the CLI.
//
// Diagnostic is the central record: a Severity, a stable numeric Code,
// a human message, a primary source.Span, and optional Notes that add
// context (e.g. "first use of this title here"). Producers emit
// through the Reporter interface; diag.BagReporter aggregates into a
// Bag, which supports sorting, deduplication and severity queries.
//
// The package performs no formatting or IO. Rendering diagnostics for
// humans lives in internal/diagfmt.
package diag
