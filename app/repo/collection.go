package repo

import (
	"encoding/json"
	"errors"
	"fmt"

	"checkboard/app/kv"
)

// ErrStorage wraps any failure of the underlying key-value store so callers
// can distinguish storage trouble from domain rule violations.
var ErrStorage = errors.New("storage failure")

// Collection persists one ordered sequence of records as a single JSON array
// under a fixed key. Every mutation is a whole-collection read-modify-write.
type Collection[T any] struct {
	store kv.Store
	key   string
}

func NewCollection[T any](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Load() ([]T, error) {
	raw, err := c.store.Get(c.key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load %q: %w", ErrStorage, c.key, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrStorage, c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) Replace(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrStorage, c.key, err)
	}
	if err := c.store.Set(c.key, raw); err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrStorage, c.key, err)
	}
	return nil
}

// Upsert replaces the first record for which match returns true, or appends
// the record when no existing one matches.
func (c *Collection[T]) Upsert(item T, match func(T) bool) error {
	items, err := c.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if match(items[i]) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.Replace(items)
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool, error) {
	var zero T
	items, err := c.Load()
	if err != nil {
		return zero, false, err
	}
	for _, it := range items {
		if pred(it) {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Filter returns all records matching pred, in stored order.
func (c *Collection[T]) Filter(pred func(T) bool) ([]T, error) {
	items, err := c.Load()
	if err != nil {
		return nil, err
	}
	var out []T
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// RemoveWhere deletes every record matching pred and reports how many were
// removed. The collection is rewritten only when something matched.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) (int, error) {
	items, err := c.Load()
	if err != nil {
		return 0, err
	}
	kept := items[:0:0]
	for _, it := range items {
		if !pred(it) {
			kept = append(kept, it)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := c.Replace(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (c *Collection[T]) Clear() error {
	if err := c.store.Delete(c.key); err != nil {
		return fmt.Errorf("%w: clear %q: %w", ErrStorage, c.key, err)
	}
	return nil
}
