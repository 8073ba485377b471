// Package driver wires the load → catalog → render pipeline together
// for the CLI: file handling, diagnostics collection, the render
// cache, and multi-document checking.
package driver

import (
	"fmt"

	"snag/internal/diag"
	"snag/internal/loader"
	"snag/internal/note"
	"snag/internal/source"
)

// LoadResult carries everything a command needs after loading one
// document. Catalog is nil when the document is malformed; the Bag
// then holds the findings.
type LoadResult struct {
	FileSet *source.FileSet
	File    *source.File
	Catalog *note.Catalog
	Bag     *diag.Bag
	Err     error
}

// Load reads and parses the document at path. Read failures carry the
// IO4001 code so scripts can match on it.
func Load(path string, maxDiagnostics int) (*LoadResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", diag.IOReadFailed.ID(), err)
	}
	return loadFile(fs, fileID, maxDiagnostics), nil
}

// LoadVirtual parses an in-memory document, used for stdin input.
func LoadVirtual(name string, content []byte, maxDiagnostics int) *LoadResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return loadFile(fs, fileID, maxDiagnostics)
}

func loadFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *LoadResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	cat, err := loader.Load(file, loader.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	bag.Sort()

	return &LoadResult{
		FileSet: fs,
		File:    file,
		Catalog: cat,
		Bag:     bag,
		Err:     err,
	}
}
