package catalogs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "catalog.json"))

	c, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "catalog.json")
	s := NewStore(path)

	c, err := New(
		&Entry{
			Name:    "Mario",
			Head:    "00000000",
			Tail:    "00000002",
			Series:  "Super Smash Bros.",
			Type:    "figure",
			Release: map[Region]string{RegionNA: "2014-11-21"},
		},
		&Entry{Name: "Luigi", Head: "00010000", Tail: "00000003", Series: "Super Smash Bros.", Type: "figure"},
	)
	require.NoError(t, err)
	require.NoError(t, s.Save(c))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	mario, err := loaded.Get("00000000-00000002-super-smash-bros")
	require.NoError(t, err)
	assert.Equal(t, "Mario", mario.Name)
	assert.Equal(t, "2014-11-21", mario.Release[RegionNA])
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "catalog.json"))

	c, err := New(&Entry{Name: "Mario", Head: "00000000", Tail: "00000002", Series: "Super Smash Bros."})
	require.NoError(t, err)
	require.NoError(t, s.Save(c))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "catalog.json", names[0].Name())
}

func TestStoreLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreIsStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	s := NewStore(path)

	stale, err := s.IsStale(6 * time.Hour)
	require.NoError(t, err)
	assert.True(t, stale, "missing file is always stale")

	c, err := New(&Entry{Name: "Mario", Head: "00000000", Tail: "00000002", Series: "Super Smash Bros."})
	require.NoError(t, err)
	require.NoError(t, s.Save(c))

	stale, err = s.IsStale(6 * time.Hour)
	require.NoError(t, err)
	assert.False(t, stale)

	old := time.Now().Add(-7 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	stale, err = s.IsStale(6 * time.Hour)
	require.NoError(t, err)
	assert.True(t, stale)
}
