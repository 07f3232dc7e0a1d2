// Package clone deep copies arbitrary values through reflection so that
// collections derived from one another never share mutable element state.
package clone

import "reflect"

// Value returns a deep copy of v. Pointers, maps, slices, arrays, structs and
// interfaces are copied recursively; unexported struct fields, funcs and
// channels keep their original value. Pointer cycles are preserved rather
// than followed forever.
func Value[T any](v T) T {
	return as[T](cloneValue(reflect.ValueOf(&v).Elem(), map[uintptr]reflect.Value{}))
}

// Slice deep copies every element of items into a new slice. A nil input
// stays nil.
func Slice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	seen := map[uintptr]reflect.Value{}
	for i := range items {
		out[i] = as[T](cloneValue(reflect.ValueOf(&items[i]).Elem(), seen))
	}
	return out
}

func as[T any](v reflect.Value) T {
	var zero T
	if !v.IsValid() {
		return zero
	}
	if out, ok := v.Interface().(T); ok {
		return out
	}
	return zero
}

func cloneValue(v reflect.Value, seen map[uintptr]reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		if existing, ok := seen[v.Pointer()]; ok {
			return existing
		}
		out := reflect.New(v.Type().Elem())
		seen[v.Pointer()] = out
		out.Elem().Set(cloneValue(v.Elem(), seen))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		elem := cloneValue(v.Elem(), seen)
		out := reflect.New(v.Type()).Elem()
		out.Set(elem)
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(cloneValue(v.Field(i), seen))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneValue(iter.Value(), seen))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return out
	default:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		return out
	}
}
