package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Record is anything persisted in a collection with an integer id unique
// within that collection.
type Record interface {
	RecordID() int
}

// Collection is one role's record file. All writes replace the whole file,
// last writer wins. The mutex makes read-modify-write sequences issued
// through Update safe within a single process; there is no cross-process
// locking.
type Collection[T Record] struct {
	path string
	mu   sync.Mutex
}

func newCollection[T Record](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load returns the collection in insertion order. A missing or unparsable
// file is treated as an empty collection, not an error.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save replaces the whole collection on disk.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs fn over the current records under the collection lock and
// persists whatever fn returns. If fn returns an error nothing is written
// and the error is passed through, so callers can make check-then-append
// sequences atomic with respect to other Update calls.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		// corrupt file reads as empty, matching the missing-file case
		return []T{}, nil
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// write-then-rename so readers never observe a half-written file
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

// NextID allocates the next record id for a collection: 1 when empty,
// otherwise max existing id + 1. Ids are never reused.
func NextID[T Record](records []T) int {
	next := 1
	for _, r := range records {
		if id := r.RecordID(); id >= next {
			next = id + 1
		}
	}
	return next
}
