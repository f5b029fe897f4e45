package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentDigestIsStable(t *testing.T) {
	a := ContentDigest([]byte(`{"package":"p"}`))
	b := ContentDigest([]byte(`{"package":"p"}`))
	c := ContentDigest([]byte(`{"package":"q"}`))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	doc := &Document{
		Package: "game.domain",
		Test:    true,
		Imports: []Import{{Target: "std.lang", All: true}},
		Declarations: []Decl{
			{Kind: DeclModule, Name: "Dog", Supertypes: []string{"Animal"}},
		},
	}
	key := ContentDigest([]byte("doc bytes"))
	require.NoError(t, cache.Put(key, doc))

	got, hit, err := cache.Get(key)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, doc, got)
}

func TestDiskCacheMissAndNilSafety(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	_, hit, err := cache.Get(ContentDigest([]byte("never stored")))
	require.NoError(t, err)
	assert.False(t, hit)

	var nilCache *DiskCache
	assert.NoError(t, nilCache.Put(Digest{}, &Document{Package: "p"}))
	_, hit, err = nilCache.Get(Digest{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDiskCacheRejectsStaleSchema(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(dir)
	require.NoError(t, err)

	key := ContentDigest([]byte("payload"))
	require.NoError(t, cache.Put(key, &Document{Package: "p"}))

	// Corrupt the entry into an undecodable blob; Get must fail loudly
	// rather than hand back garbage.
	entries, err := filepath.Glob(filepath.Join(dir, "docs", "*.mp"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(entries[0], []byte{0xc1}, 0o644))

	_, hit, err := cache.Get(key)
	assert.False(t, hit)
	assert.Error(t, err)
}
