// Package project locates and loads snag.toml, the per-catalog
// manifest that names the hazard document and default render options.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"snag/internal/diag"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "snag.toml"

// Manifest is a parsed snag.toml together with its location.
type Manifest struct {
	Path   string // absolute path to snag.toml
	Root   string // directory containing it
	Config Config
}

// Config mirrors the snag.toml structure.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Render  RenderConfig  `toml:"render"`
}

// CatalogConfig is the [catalog] section.
type CatalogConfig struct {
	Name     string `toml:"name"`
	Document string `toml:"document"`
}

// RenderConfig is the [render] section. Both fields are optional
// defaults the CLI flags override.
type RenderConfig struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

var (
	// ErrCatalogSectionMissing indicates snag.toml has no [catalog].
	ErrCatalogSectionMissing = errors.New("missing [catalog]")
	// ErrDocumentMissing indicates [catalog].document is absent or blank.
	ErrDocumentMissing = errors.New("missing [catalog].document")
)

// Load parses the manifest at path. Errors carry the PRJ41xx codes.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: failed to parse TOML: %w", diag.PrjBadManifest.ID(), path, err)
	}
	if !meta.IsDefined("catalog") {
		return nil, fmt.Errorf("%s: %s: %w", diag.PrjBadManifest.ID(), path, ErrCatalogSectionMissing)
	}
	doc := strings.TrimSpace(cfg.Catalog.Document)
	if !meta.IsDefined("catalog", "document") || doc == "" {
		return nil, fmt.Errorf("%s: %s: %w", diag.PrjNoDocument.ID(), path, ErrDocumentMissing)
	}
	cfg.Catalog.Document = doc

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

// DocumentPath resolves the configured document relative to the
// project root.
func (m *Manifest) DocumentPath() string {
	doc := m.Config.Catalog.Document
	if filepath.IsAbs(doc) {
		return doc
	}
	return filepath.Join(m.Root, doc)
}
