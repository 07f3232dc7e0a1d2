package arr

import (
	"cmp"
	"reflect"
	"time"
)

// compareDefault orders primitive values: integers, unsigned integers and
// floats by numeric value (mixed kinds compare as float64), strings
// lexically, false before true, and time.Time chronologically. Values that
// have no natural order compare equal, which leaves their relative position
// unspecified after an unstable sort.
func compareDefault(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}
	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumeric(va) && isNumeric(vb):
		fa, _ := toFloat(va)
		fb, _ := toFloat(vb)
		return cmp.Compare(fa, fb)
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	}
	return 0
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumeric(v reflect.Value) bool {
	_, ok := toFloat(v)
	return ok
}

func toFloat(v reflect.Value) (float64, bool) {
	switch {
	case isInt(v):
		return float64(v.Int()), true
	case isUint(v):
		return float64(v.Uint()), true
	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// comparatorResult converts the numeric result of a sort expression to -1,
// 0 or 1. Booleans are rejected: they cannot express "equal".
func comparatorResult(value any) (int, bool) {
	f, ok := toFloat(reflect.ValueOf(value))
	if !ok {
		return 0, false
	}
	return cmp.Compare(f, 0), true
}

// truthy reports whether a filter expression result keeps its element:
// true, non-zero numbers, non-empty strings and containers, and any other
// non-nil value.
func truthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	v := reflect.ValueOf(value)
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	}
	return true
}
