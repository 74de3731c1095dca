package catalog

import "sync"

// Catalog is the ordered collection of schema entries for a workspace.
// Readers always observe a consistent snapshot: updates replace the whole
// entry list, they never mutate it in place.
type Catalog struct {
	mu      sync.RWMutex
	entries []*Entry
	byRel   map[string]*Entry
	byID    map[string]*Entry
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		byRel: make(map[string]*Entry),
		byID:  make(map[string]*Entry),
	}
}

// Replace swaps the catalog contents for a new entry list. The relative path
// of each entry must be unique; on duplicates the last entry wins for lookup
// while the ordered list keeps both (a caller error, documented in the tree
// builder as well).
func (c *Catalog) Replace(entries []*Entry) {
	byRel := make(map[string]*Entry, len(entries))
	byID := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		byRel[e.RelativePath] = e
		byID[e.ID] = e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.byRel = byRel
	c.byID = byID
}

// All returns the ordered entry snapshot. The returned slice must not be
// mutated by callers.
func (c *Catalog) All() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

// Get retrieves an entry by id
func (c *Catalog) Get(id string) *Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[id]
}

// ByRelativePath retrieves an entry by its relative path
func (c *Catalog) ByRelativePath(relativePath string) *Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byRel[relativePath]
}

// Count returns the number of entries
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SetStatus records the validation outcome for the entry at relativePath.
// Entries are immutable once published, so the update installs a fresh copy
// of the entry into a fresh list; readers holding an earlier snapshot keep
// seeing that snapshot's status. Unknown paths are ignored.
func (c *Catalog) SetStatus(relativePath string, status ValidationStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.byRel[relativePath]
	if !ok {
		return
	}
	updated := *old
	updated.Status = status

	entries := make([]*Entry, len(c.entries))
	copy(entries, c.entries)
	for i, e := range entries {
		if e == old {
			entries[i] = &updated
		}
	}
	c.entries = entries
	c.byRel[relativePath] = &updated
	c.byID[updated.ID] = &updated
}
