package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/minio/highwayhash"
	"github.com/vmihailenco/msgpack/v5"
)

// Increment when the cached Document layout changes; stale entries are
// treated as misses.
const diskCacheSchemaVersion uint16 = 1

// Digest keys the disk cache by document content.
type Digest [highwayhash.Size]byte

var digestKey = []byte("weld-tree-document-cache-key-v01")

// ContentDigest hashes raw document bytes into a cache key.
func ContentDigest(data []byte) Digest {
	return highwayhash.Sum(data, digestKey)
}

// DiskCache keeps decoded documents on disk keyed by content digest, so
// a relink of an unchanged file skips deserialization. Thread-safe for
// concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	Schema uint16   `msgpack:"schema"`
	Doc    Document `msgpack:"doc"`
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location under XDG_CACHE_HOME (or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
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
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit
// directory, mainly for tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// A "docs" subdirectory keeps the cache root browsable.
	return filepath.Join(c.dir, "docs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a decoded document to the cache. The write
// goes through a temp file and a rename, so readers never see a torn
// entry.
func (c *DiskCache) Put(key Digest, doc *Document) error {
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
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(&diskPayload{
		Schema: diskCacheSchemaVersion,
		Doc:    *doc,
	}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached document. A missing entry or a schema mismatch is a
// miss, not an error.
func (c *DiskCache) Get(key Digest) (*Document, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload.Doc, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
