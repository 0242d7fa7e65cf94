package engine

import "sort"

// Item is anything with a stable identity and a mutable order field.
// Session exercises, sets and groups all satisfy it.
type Item interface {
	Key() string
	Pos() int
	SetPos(int)
}

// Collection keeps a slice of items under the dense-ordering invariant:
// sorting by position always yields positions 0..N-1 with no gaps or
// duplicates.
type Collection[T Item] struct {
	Items []T
}

// Append adds an item at the end, assigning max(existing position)+1.
// The position is never derived from len(Items): deletions that have not
// been compacted yet may have left gaps, and length-based assignment would
// collide with or skip over them.
func (c *Collection[T]) Append(it T) {
	max := -1
	for _, cur := range c.Items {
		if cur.Pos() > max {
			max = cur.Pos()
		}
	}
	it.SetPos(max + 1)
	c.Items = append(c.Items, it)
}

// RemoveByKey removes the item with the given key and compacts the
// remaining positions. Compacting on every deletion is cheap at the sizes
// involved and keeps index gaps from accumulating across add/delete cycles.
// Returns false when no item has the key; callers translate that into
// their own not-found error.
func (c *Collection[T]) RemoveByKey(key string) bool {
	idx := -1
	for i, cur := range c.Items {
		if cur.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.Compact()
	return true
}

// Compact re-assigns positions 0..N-1 following the current position
// order. Stable, so items sharing a position keep their relative order.
func (c *Collection[T]) Compact() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		return c.Items[i].Pos() < c.Items[j].Pos()
	})
	for i, cur := range c.Items {
		cur.SetPos(i)
	}
}

// Reorder assigns positions by the order of keys. The key list must be an
// exact permutation of the current keys.
func (c *Collection[T]) Reorder(keys []string) error {
	if len(keys) != len(c.Items) {
		return ErrInvalidPermutation
	}
	byKey := make(map[string]T, len(c.Items))
	for _, cur := range c.Items {
		byKey[cur.Key()] = cur
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := byKey[k]; !ok || seen[k] {
			return ErrInvalidPermutation
		}
		seen[k] = true
	}
	for i, k := range keys {
		byKey[k].SetPos(i)
	}
	c.Compact()
	return nil
}

// ByKey returns the item with the given key.
func (c *Collection[T]) ByKey(key string) (T, bool) {
	for _, cur := range c.Items {
		if cur.Key() == key {
			return cur, true
		}
	}
	var zero T
	return zero, false
}

// Dense reports whether positions currently form 0..N-1. Mutations keep
// this true; it exists for tests and defensive checks at load time.
func (c *Collection[T]) Dense() bool {
	seen := make([]bool, len(c.Items))
	for _, cur := range c.Items {
		p := cur.Pos()
		if p < 0 || p >= len(c.Items) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
