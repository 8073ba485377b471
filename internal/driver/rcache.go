package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"snag/internal/render"
	"snag/internal/source"
)

// Bump when renderPayload changes shape so stale entries are ignored.
const renderCacheSchemaVersion uint16 = 1

// Digest is a content-address for cached render output.
type Digest = [32]byte

// RenderCache stores rendered output on disk keyed by document hash
// and format, so re-rendering an unchanged catalog is a file read.
// Safe for concurrent use.
type RenderCache struct {
	mu  sync.RWMutex
	dir string
}

type renderPayload struct {
	Schema uint16
	Format string
	Output []byte
}

// OpenRenderCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenRenderCache(app string) (*RenderCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RenderCache{dir: dir}, nil
}

// CacheDir returns the directory the cache lives in.
func (c *RenderCache) CacheDir() string {
	return c.dir
}

// CacheKey derives the content address for one render: document hash,
// format, and title all shape the output, so all of them feed the key.
func CacheKey(file *source.File, format render.Format, title string) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])
	var meta [4]byte
	binary.LittleEndian.PutUint16(meta[0:2], renderCacheSchemaVersion)
	binary.LittleEndian.PutUint16(meta[2:4], uint16(format))
	h.Write(meta[:])
	h.Write([]byte(title))
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func (c *RenderCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// "out" subdirectory keeps the cache easy to inspect and clear.
	return filepath.Join(c.dir, "out", hexKey+".mp")
}

// Put writes rendered output for key. The write is atomic: a temp
// file followed by rename.
func (c *RenderCache) Put(key Digest, format render.Format, output []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&renderPayload{
		Schema: renderCacheSchemaVersion,
		Format: format.String(),
		Output: output,
	}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads cached output for key. The boolean reports a hit; entries
// with a different schema version are treated as misses.
func (c *RenderCache) Get(key Digest) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload renderPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decoding cache entry: %w", err)
	}
	if payload.Schema != renderCacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Output, true, nil
}

// Clear removes every cached entry.
func (c *RenderCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "out"))
}
