package driver

import (
	"bytes"
	"testing"

	"snag/internal/render"
)

func openTestCache(t *testing.T) *RenderCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenRenderCache("snag-test")
	if err != nil {
		t.Fatalf("OpenRenderCache: %v", err)
	}
	return cache
}

func TestRenderCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	res := LoadVirtual("hazards.hz", []byte(goodDoc), 100)
	key := CacheKey(res.File, render.FormatText, "")

	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	want := []byte("rendered output")
	if err := cache.Put(key, render.FormatText, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, hit, err := cache.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit after Put")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestCacheKeyVariesByFormatContentAndTitle(t *testing.T) {
	a := LoadVirtual("a.hz", []byte(goodDoc), 100)
	b := LoadVirtual("b.hz", []byte("= Other\nbody\n"), 100)

	if CacheKey(a.File, render.FormatText, "") == CacheKey(a.File, render.FormatHTML, "") {
		t.Error("keys for different formats must differ")
	}
	if CacheKey(a.File, render.FormatText, "") == CacheKey(b.File, render.FormatText, "") {
		t.Error("keys for different documents must differ")
	}
	if CacheKey(a.File, render.FormatHTML, "Title A") == CacheKey(a.File, render.FormatHTML, "Title B") {
		t.Error("keys for different titles must differ")
	}
}

func TestRenderCacheClear(t *testing.T) {
	cache := openTestCache(t)
	res := LoadVirtual("hazards.hz", []byte(goodDoc), 100)
	key := CacheKey(res.File, render.FormatText, "")

	if err := cache.Put(key, render.FormatText, []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := cache.Get(key); hit {
		t.Error("expected miss after Clear")
	}
}

func TestRenderCatalogUsesCache(t *testing.T) {
	cache := openTestCache(t)
	res := LoadVirtual("hazards.hz", []byte(goodDoc), 100)
	opts := RenderOptions{Format: render.FormatText, Cache: cache}

	first, err := RenderCatalog(res, opts)
	if err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}

	// A poisoned cache entry proves the second render was served from it.
	key := CacheKey(res.File, render.FormatText, "")
	if err := cache.Put(key, render.FormatText, []byte("from-cache")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second, err := RenderCatalog(res, opts)
	if err != nil {
		t.Fatalf("RenderCatalog (cached): %v", err)
	}
	if string(second) != "from-cache" {
		t.Errorf("second render = %q, want cache contents", second)
	}
	if bytes.Equal(first, second) {
		t.Error("expected differing outputs once cache was poisoned")
	}
}

func TestRenderCatalogCacheHonorsTitle(t *testing.T) {
	cache := openTestCache(t)
	res := LoadVirtual("hazards.hz", []byte(goodDoc), 100)

	first, err := RenderCatalog(res, RenderOptions{
		Format: render.FormatHTML, Title: "Title A", Cache: cache,
	})
	if err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}
	second, err := RenderCatalog(res, RenderOptions{
		Format: render.FormatHTML, Title: "Title B", Cache: cache,
	})
	if err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Fatal("second title must not be served the first title's bytes")
	}
	if !bytes.Contains(second, []byte("<title>Title B</title>")) {
		t.Errorf("second render = %q, want Title B in output", second)
	}
}

func TestRenderCatalogWithoutCache(t *testing.T) {
	res := LoadVirtual("hazards.hz", []byte(goodDoc), 100)

	a, err := RenderCatalog(res, RenderOptions{Format: render.FormatHTML, Title: "Notes"})
	if err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}
	b, err := RenderCatalog(res, RenderOptions{Format: render.FormatHTML, Title: "Notes"})
	if err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("renders of the same catalog must be byte-identical")
	}
}

func TestRenderCatalogNilCatalog(t *testing.T) {
	res := LoadVirtual("bad.hz", []byte(badDoc), 100)
	if _, err := RenderCatalog(res, RenderOptions{Format: render.FormatText}); err == nil {
		t.Fatal("expected error when catalog is nil")
	}
}
