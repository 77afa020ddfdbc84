package catalogs

import (
	"fmt"
	"sort"

	"github.com/figtrack/figtrack/pkg/errors"
)

// Catalog is the in-memory working copy of the canonical figure list. A
// run owns exactly one Catalog, mutates it in place, and hands it back to
// the store for persistence. Entries are only ever added or updated, never
// removed.
type Catalog struct {
	entries map[string]*Entry
}

// New creates a catalog from the given entries. Duplicate keys are
// rejected.
func New(entries ...*Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add inserts an entry. Returns ErrAlreadyExists when the key is taken
// and ErrInvalidInput when the entry has no name.
func (c *Catalog) Add(e *Entry) error {
	if e == nil || e.Name == "" {
		return fmt.Errorf("entry must have a name: %w", errors.ErrInvalidInput)
	}
	key := e.Key()
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("entry %q: %w", key, errors.ErrAlreadyExists)
	}
	c.entries[key] = e
	return nil
}

// Get returns the entry with the given key, or ErrNotFound.
func (c *Catalog) Get(key string) (*Entry, error) {
	e, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", key, errors.ErrNotFound)
	}
	return e, nil
}

// List returns all entries sorted by key. Match iteration relies on this
// order: combined with strict greater-than comparison it makes tie-breaks
// between equal scores reproducible across runs.
func (c *Catalog) List() []*Entry {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]*Entry, 0, len(keys))
	for _, key := range keys {
		out = append(out, c.entries[key])
	}
	return out
}

// Replace rekeys an entry after its identity fields changed. The entry is
// removed under oldKey and reinserted under its current key. Promotion of
// a placeholder to an authoritative identity is the only caller.
func (c *Catalog) Replace(oldKey string, e *Entry) error {
	if _, ok := c.entries[oldKey]; !ok {
		return fmt.Errorf("entry %q: %w", oldKey, errors.ErrNotFound)
	}
	newKey := e.Key()
	if newKey != oldKey {
		if _, ok := c.entries[newKey]; ok {
			return fmt.Errorf("entry %q: %w", newKey, errors.ErrAlreadyExists)
		}
	}
	delete(c.entries, oldKey)
	c.entries[newKey] = e
	return nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
