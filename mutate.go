package arr

import "slices"

// Concat appends the elements of each sequence in argument order.
func (a *Arr[T]) Concat(seqs ...[]T) *Arr[T] {
	added := 0
	for _, seq := range seqs {
		a.items = append(a.items, seq...)
		added += len(seq)
	}
	a.emit(verbConcatenated, map[string]any{"added": added})
	return a
}

// Merge appends the elements of other collections in argument order. Nil
// collections are skipped.
func (a *Arr[T]) Merge(others ...*Arr[T]) *Arr[T] {
	seqs := make([][]T, 0, len(others))
	for _, other := range others {
		if other == nil {
			continue
		}
		// copy first: other may be the receiver itself
		seqs = append(seqs, other.All())
	}
	return a.Concat(seqs...)
}

// Push appends items to the end.
func (a *Arr[T]) Push(items ...T) *Arr[T] {
	a.items = append(a.items, items...)
	a.emit(verbPushed, map[string]any{"added": len(items)})
	return a
}

// Unshift prepends items, keeping their argument order.
func (a *Arr[T]) Unshift(items ...T) *Arr[T] {
	a.items = slices.Insert(a.items, 0, items...)
	a.emit(verbUnshifted, map[string]any{"added": len(items)})
	return a
}

// Splice removes length elements starting at start and inserts replacement
// in their place. A negative start counts from the end; a start beyond
// either end is clamped. A negative length leaves that many elements at the
// end of the collection untouched.
func (a *Arr[T]) Splice(start, length int, replacement ...T) *Arr[T] {
	n := len(a.items)
	from := clampIndex(start, n)
	var to int
	switch {
	case length < 0:
		to = max(n+length, from)
	case length >= n-from:
		to = n
	default:
		to = from + length
	}
	a.items = slices.Replace(a.items, from, to, replacement...)
	a.emit(verbSpliced, map[string]any{
		"start":   from,
		"removed": to - from,
		"added":   len(replacement),
	})
	return a
}

// Truncate drops every element from start onwards. It is Splice with the
// length omitted.
func (a *Arr[T]) Truncate(start int) *Arr[T] {
	n := len(a.items)
	return a.Splice(start, n-clampIndex(start, n))
}
