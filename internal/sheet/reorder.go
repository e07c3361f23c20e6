package sheet

// OrderUpdate pairs an entity id with the zero-based order index it should
// be persisted with after a reorder.
type OrderUpdate struct {
	ID         string
	OrderIndex int
}

// Move performs a single-element list move: the element at src is removed
// and reinserted at dst. A nil dst models a cancelled drag. The returned
// bool reports whether anything moved; on a no-op the original slice is
// returned untouched so callers can short-circuit without issuing any
// writes. The input slice is never mutated.
func Move[T any](list []T, src int, dst *int) ([]T, bool) {
	if dst == nil {
		return list, false
	}
	d := *dst
	if src == d {
		return list, false
	}
	if src < 0 || src >= len(list) || d < 0 || d >= len(list) {
		return list, false
	}

	out := make([]T, 0, len(list))
	out = append(out, list[:src]...)
	out = append(out, list[src+1:]...)
	out = append(out[:d], append([]T{list[src]}, out[d:]...)...)
	return out, true
}

// Plan produces one order_index rewrite per sibling in the list's new
// order. Reordering rewrites every sibling, not just the moved element,
// so display order survives interleaved concurrent writes.
func Plan[T any](list []T, id func(T) string) []OrderUpdate {
	updates := make([]OrderUpdate, len(list))
	for i, el := range list {
		updates[i] = OrderUpdate{ID: id(el), OrderIndex: i}
	}
	return updates
}
