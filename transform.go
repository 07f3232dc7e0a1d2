package arr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-arr/internal/clone"
)

func cloneItems[T any](items []T) []T {
	return clone.Slice(items)
}

// Map applies fn to every element and collects the results in a new
// collection of the same length. A nil fn fails with ErrTypeMismatch.
func (a *Arr[T]) Map(fn func(T) T) (*Arr[T], error) {
	return MapTo(a, fn)
}

// MapTo is Map for transformations that change the element type.
func MapTo[T, U any](a *Arr[T], fn func(T) U) (*Arr[U], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: map requires a function", ErrTypeMismatch)
	}
	items := cloneItems(a.All())
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return derive(a, out), nil
}

// Filter keeps the elements for which fn returns true, preserving their
// relative order. A nil fn fails with ErrTypeMismatch.
func (a *Arr[T]) Filter(fn func(T) bool) (*Arr[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: filter requires a predicate", ErrTypeMismatch)
	}
	out := make([]T, 0, a.Len())
	for _, item := range a.All() {
		if fn(item) {
			out = append(out, item)
		}
	}
	return derive(a, cloneItems(out)), nil
}

// Grep is an alias for Filter.
func (a *Arr[T]) Grep(fn func(T) bool) (*Arr[T], error) {
	return a.Filter(fn)
}

// Sort returns a new collection ordered by compare, which returns a negative
// number when a sorts before b, zero when either order is acceptable and a
// positive number when b sorts before a. The sort is not stable. A nil
// compare falls back to the natural order of primitive values.
func (a *Arr[T]) Sort(compare func(a, b T) int) *Arr[T] {
	items := cloneItems(a.All())
	slices.SortFunc(items, comparatorOrDefault(compare))
	return derive(a, items)
}

// SortStable is Sort keeping equal elements in their original order.
func (a *Arr[T]) SortStable(compare func(a, b T) int) *Arr[T] {
	items := cloneItems(a.All())
	slices.SortStableFunc(items, comparatorOrDefault(compare))
	return derive(a, items)
}

func comparatorOrDefault[T any](compare func(a, b T) int) func(a, b T) int {
	if compare != nil {
		return compare
	}
	return func(x, y T) int {
		return compareDefault(any(x), any(y))
	}
}

// Values returns an independent copy holding the same elements in the same
// order.
func (a *Arr[T]) Values() *Arr[T] {
	return derive(a, cloneItems(a.All()))
}

// Join renders every element with fmt.Sprint and joins them with sep.
func (a *Arr[T]) Join(sep string) string {
	parts := make([]string, a.Len())
	for i, item := range a.All() {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}

// Implode is an alias for Join.
func (a *Arr[T]) Implode(sep string) string {
	return a.Join(sep)
}
