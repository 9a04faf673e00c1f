package storage

import (
	"context"
	"encoding/json"
)

// ReadCollection decodes the JSON array held by each backend independently,
// concatenates primary then secondary and drops repeated IDs, keeping the
// first occurrence. A backend whose copy is missing or corrupt contributes nothing.
func ReadCollection[T any](ctx context.Context, a *Adapter, k Key, id func(T) string) []T {
	items, _ := LoadCollection(ctx, a, k, id)
	return items
}

// LoadCollection is ReadCollection that also reports whether either backend
// held a JSON array under the key. A stored empty array counts as found.
func LoadCollection[T any](ctx context.Context, a *Adapter, k Key, id func(T) string) ([]T, bool) {
	var fromPrimary, fromSecondary []T
	var inPrimary, inSecondary bool

	if raw, ok := a.readPrimary(ctx, k); ok {
		fromPrimary, inPrimary = decodeItems[T](a, a.primary.Name(), k.Primary, raw)
	}
	if raw, ok := a.readSecondary(ctx, k); ok {
		fromSecondary, inSecondary = decodeItems[T](a, a.secondary.Name(), k.Secondary, raw)
	}

	return MergeByID(id, fromPrimary, fromSecondary), inPrimary || inSecondary
}

// decodeItems decodes element by element so one malformed record is skipped
// instead of discarding the whole array. ok is false when raw is not an array.
func decodeItems[T any](a *Adapter, backend, key, raw string) ([]T, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		a.logger.Warn("collection_decode_failed", "backend", backend, "key", key, "error", err)
		return nil, false
	}

	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			a.logger.Warn("collection_item_skipped", "backend", backend, "key", key, "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, true
}

// WriteCollection persists the whole collection to both backends
func WriteCollection[T any](ctx context.Context, a *Adapter, k Key, items []T) bool {
	if items == nil {
		items = []T{}
	}
	return a.Set(ctx, k, items)
}

// MergeByID concatenates lists in order and keeps the first item seen for each ID
func MergeByID[T any](id func(T) string, lists ...[]T) []T {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	seen := make(map[string]struct{}, total)
	out := make([]T, 0, total)
	for _, l := range lists {
		for _, item := range l {
			key := id(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
