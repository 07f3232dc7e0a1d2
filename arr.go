package arr

import (
	"fmt"
	"slices"
)

// Arr is an ordered collection that owns its backing slice. Mutators change
// the receiver and return it for chaining; copy-transformations return a new
// collection and leave the receiver untouched.
//
// Arr performs no locking. Callers sharing an instance across goroutines
// must serialise access themselves.
type Arr[T any] struct {
	items []T
	cfg   config
	id    string
}

// New wraps items directly without copying. A nil slice yields an empty
// collection.
func New[T any](items []T, opts ...Option) *Arr[T] {
	if items == nil {
		items = []T{}
	}
	return &Arr[T]{
		items: items,
		cfg:   applyOptions(config{}, opts),
	}
}

// Forge builds a collection from individual values:
//
//	arr.Forge(1, 2, 3)
//	arr.Forge(values...)
//
// The argument slice is copied, so spreading an existing slice never aliases
// it.
func Forge[T any](items ...T) *Arr[T] {
	return FromSlice(items)
}

// FromSlice builds a collection holding a copy of items.
func FromSlice[T any](items []T, opts ...Option) *Arr[T] {
	return New(slices.Clone(items), opts...)
}

// With applies opts to the receiver.
func (a *Arr[T]) With(opts ...Option) *Arr[T] {
	a.cfg = applyOptions(a.cfg, opts)
	return a
}

// Len returns the number of elements.
func (a *Arr[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// All returns a copy of the elements as a plain slice.
func (a *Arr[T]) All() []T {
	if a == nil {
		return []T{}
	}
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// At returns the element at index. Negative indices count from the end.
func (a *Arr[T]) At(index int) (T, error) {
	var zero T
	n := a.Len()
	i := normalizeIndex(index, n)
	if !inBounds(i, n) {
		return zero, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, n)
	}
	return a.items[i], nil
}

func (a *Arr[T]) String() string {
	return fmt.Sprint(a.All())
}

// derive wraps items in a new collection carrying the receiver's options.
func derive[T, U any](a *Arr[T], items []U) *Arr[U] {
	if items == nil {
		items = []U{}
	}
	out := &Arr[U]{items: items}
	if a != nil {
		out.cfg = a.cfg
	}
	return out
}

// Must panics when err is non-nil and otherwise returns a. It allows
// fallible transformations to be chained:
//
//	arr.Must(arr.Must(c.Filter(even)).Map(double))
func Must[T any](a *Arr[T], err error) *Arr[T] {
	if err != nil {
		panic(err)
	}
	return a
}
