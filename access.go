package arr

import "fmt"

// Pick returns a new collection holding the elements at indices, in the
// order requested. Negative indices count from the end. The first index that
// falls outside the collection aborts the call with ErrOutOfRange.
func (a *Arr[T]) Pick(indices []int) (*Arr[T], error) {
	n := a.Len()
	out := make([]T, 0, len(indices))
	for _, index := range indices {
		i := normalizeIndex(index, n)
		if !inBounds(i, n) {
			return nil, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, n)
		}
		out = append(out, a.items[i])
	}
	return derive(a, cloneItems(out)), nil
}

// Slice is the variadic form of Pick.
func (a *Arr[T]) Slice(indices ...int) (*Arr[T], error) {
	return a.Pick(indices)
}

// SliceGroups resolves each group of indices in turn and flattens the
// selected elements into one collection.
func (a *Arr[T]) SliceGroups(groups ...[]int) (*Arr[T], error) {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	flat := make([]int, 0, total)
	for _, group := range groups {
		flat = append(flat, group...)
	}
	return a.Pick(flat)
}
