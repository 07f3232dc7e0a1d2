package arr

import "fmt"

// MapExpr evaluates l once per element, binding the element to it and its
// position to index, and collects the results.
func MapExpr[T any](a *Arr[T], l *Lambda) (*Arr[any], error) {
	if l == nil {
		return nil, fmt.Errorf("%w: map requires a compiled lambda", ErrTypeMismatch)
	}
	items := a.All()
	out := make([]any, len(items))
	for i, item := range items {
		value, err := l.Call(CallContext{It: item, Index: i})
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[i] = value
	}
	return derive(a, out), nil
}

// FilterExpr keeps the elements for which l returns a truthy value.
func (a *Arr[T]) FilterExpr(l *Lambda) (*Arr[T], error) {
	if l == nil {
		return nil, fmt.Errorf("%w: filter requires a compiled lambda", ErrTypeMismatch)
	}
	items := a.All()
	out := make([]T, 0, len(items))
	for i, item := range items {
		value, err := l.Call(CallContext{It: item, Index: i})
		if err != nil {
			return nil, atIndex(err, i)
		}
		if truthy(value) {
			out = append(out, item)
		}
	}
	return derive(a, cloneItems(out)), nil
}

// GrepExpr is an alias for FilterExpr.
func (a *Arr[T]) GrepExpr(l *Lambda) (*Arr[T], error) {
	return a.FilterExpr(l)
}

// SortExpr sorts a copy using l as the comparator. The expression sees the
// operands as a and b and must return a number with the same meaning as the
// result of a Sort comparator.
func (a *Arr[T]) SortExpr(l *Lambda) (*Arr[T], error) {
	if l == nil {
		return nil, fmt.Errorf("%w: sort requires a compiled lambda", ErrTypeMismatch)
	}
	var failure error
	sorted := a.Sort(func(x, y T) int {
		if failure != nil {
			return 0
		}
		value, err := l.Call(CallContext{A: x, B: y, Index: -1})
		if err != nil {
			failure = err
			return 0
		}
		result, ok := comparatorResult(value)
		if !ok {
			failure = fmt.Errorf("%w: sort expression %q returned %T, want a number", ErrTypeMismatch, l.Expression(), value)
			return 0
		}
		return result
	})
	if failure != nil {
		return nil, failure
	}
	return sorted, nil
}
