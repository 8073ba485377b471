package driver

import (
	"bytes"
	"fmt"

	"snag/internal/note"
	"snag/internal/render"
	"snag/internal/ui"
)

// RenderOptions selects the output shape for RenderCatalog.
type RenderOptions struct {
	Format render.Format
	// Title feeds the HTML <title>; other formats ignore it.
	Title string
	// Width bounds the ANSI layout; 0 picks a default.
	Width int
	// Cache, when non-nil, is consulted and filled keyed by the
	// document hash, format, and title. ANSI output is never cached:
	// it depends on the terminal's color profile.
	Cache *RenderCache
}

// NewRenderer returns the renderer for a format.
func NewRenderer(opts RenderOptions) render.Renderer {
	switch opts.Format {
	case render.FormatHTML:
		return render.HTML{Title: opts.Title}
	case render.FormatJSON:
		return render.JSON{}
	case render.FormatANSI:
		return ui.ANSI{Width: opts.Width}
	default:
		return render.Text{}
	}
}

// RenderCatalog renders res.Catalog to bytes, going through the
// render cache when one is configured.
func RenderCatalog(res *LoadResult, opts RenderOptions) ([]byte, error) {
	if res.Catalog == nil {
		return nil, fmt.Errorf("document %s has no catalog to render", res.File.Path)
	}

	cacheable := opts.Cache != nil && opts.Format != render.FormatANSI
	var key Digest
	if cacheable {
		key = CacheKey(res.File, opts.Format, opts.Title)
		if out, hit, err := opts.Cache.Get(key); err == nil && hit {
			return out, nil
		}
	}

	out, err := renderBytes(NewRenderer(opts), res.Catalog)
	if err != nil {
		return nil, err
	}
	if cacheable {
		// Cache failures must not fail the render.
		_ = opts.Cache.Put(key, opts.Format, out)
	}
	return out, nil
}

func renderBytes(r render.Renderer, c *note.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
