package bst

import (
	"math"
	"reflect"
)

// Comparable interface.
type Comparable[K any] interface {
	// Compare with other value. Returns -1 if less than, 0 if
	// equals, and 1 if greater than the other value.
	Compare(other K) int
}

func compareComparable[K Comparable[K]](first, second K) int {
	return first.Compare(second)
}

// isMissing reports whether the key can not take part in the ordering:
// nil references and floating-point NaN.
func isMissing(key any) bool {
	if key == nil {
		return true
	}

	switch k := key.(type) {
	case float64:
		return math.IsNaN(k)
	case float32:
		return math.IsNaN(float64(k))
	case string, int, int64, int32, uint, uint64, uint32:
		return false
	}

	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()

	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}

	return false
}
