// Package internal holds the runtime discovery of an element type's
// intrinsic order, used by the order package when callers do not
// supply a comparator.
package internal

import (
	"cmp"
	"reflect"
	"strings"
	"time"
)

// Comparer is implemented by types that define their own total order
// (as time.Time does.)
type Comparer[T any] interface{ Compare(T) int }

// LessThanner is implemented by types that define a less-than
// relation.
type LessThanner[T any] interface{ LessThan(T) bool }

func as[T any, S any](fn func(a, b S) int) func(a, b T) int {
	return any(fn).(func(a, b T) int)
}

// Natural returns the intrinsic order for T, and false if T has no
// order that can be discovered. Builtin types, Compare and LessThan
// methods are resolved once; named types with an ordered underlying
// kind fall back to a reflection based comparison.
func Natural[T any]() (func(a, b T) int, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		return as[T](cmp.Compare[int]), true
	case int8:
		return as[T](cmp.Compare[int8]), true
	case int16:
		return as[T](cmp.Compare[int16]), true
	case int32:
		return as[T](cmp.Compare[int32]), true
	case int64:
		return as[T](cmp.Compare[int64]), true
	case uint:
		return as[T](cmp.Compare[uint]), true
	case uint8:
		return as[T](cmp.Compare[uint8]), true
	case uint16:
		return as[T](cmp.Compare[uint16]), true
	case uint32:
		return as[T](cmp.Compare[uint32]), true
	case uint64:
		return as[T](cmp.Compare[uint64]), true
	case uintptr:
		return as[T](cmp.Compare[uintptr]), true
	case float32:
		return as[T](cmp.Compare[float32]), true
	case float64:
		return as[T](cmp.Compare[float64]), true
	case string:
		return as[T](strings.Compare), true
	case bool:
		return as[T](compareBool), true
	case time.Time:
		return as[T](time.Time.Compare), true
	case Comparer[T]:
		return func(a, b T) int { return any(a).(Comparer[T]).Compare(b) }, true
	case LessThanner[T]:
		return func(a, b T) int {
			switch {
			case any(a).(LessThanner[T]).LessThan(b):
				return -1
			case any(b).(LessThanner[T]).LessThan(a):
				return 1
			default:
				return 0
			}
		}, true
	}

	if !orderedKind(reflect.TypeOf(&zero).Elem().Kind()) {
		return nil, false
	}

	return func(a, b T) int { return compareReflect(reflect.ValueOf(a), reflect.ValueOf(b)) }, true
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func orderedKind(k reflect.Kind) bool {
	switch k { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String, reflect.Bool:
		return true
	default:
		return false
	}
}

func compareReflect(a, b reflect.Value) int {
	switch a.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	default:
		return compareBool(a.Bool(), b.Bool())
	}
}
