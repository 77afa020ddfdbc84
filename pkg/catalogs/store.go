package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/figtrack/figtrack/pkg/constants"
	"github.com/figtrack/figtrack/pkg/errors"
)

// storeFile is the on-disk shape of the catalog.
type storeFile struct {
	Figures []*Entry `json:"figures"`
}

// Store persists a catalog as a single JSON document. Saves are atomic:
// the file is written to a temp sibling and renamed into place, so a
// crashed run never leaves a truncated catalog behind.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog from disk. A missing file is not an error; it
// yields an empty catalog, so first runs bootstrap cleanly.
func (s *Store) Load() (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return New()
	}
	if err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("json", s.path, err)
	}

	return New(file.Figures...)
}

// Save writes the catalog to disk, creating parent directories as needed.
func (s *Store) Save(c *Catalog) error {
	if err := os.MkdirAll(filepath.Dir(s.path), constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(s.path), err)
	}

	data, err := json.MarshalIndent(storeFile{Figures: c.List()}, "", "  ")
	if err != nil {
		return errors.WrapParse("json", s.path, err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.WrapIO("rename", s.path, err)
	}
	return nil
}

// LastModified returns the catalog file's mtime. A missing file reports
// the zero time, which always reads as stale.
func (s *Store) LastModified() (time.Time, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errors.WrapIO("stat", s.path, err)
	}
	return info.ModTime(), nil
}

// IsStale reports whether the catalog file is older than maxAge. Missing
// files are always stale.
func (s *Store) IsStale(maxAge time.Duration) (bool, error) {
	mtime, err := s.LastModified()
	if err != nil {
		return false, err
	}
	if mtime.IsZero() {
		return true, nil
	}
	return time.Since(mtime) > maxAge, nil
}
