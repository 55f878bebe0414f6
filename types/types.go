// Package types provides side-effect-free predicates over dynamic values.
//
// Validation code uses them to decide whether to raise
// jsuerror.WrongTypeArgs. Every predicate accepts any value, including nil,
// and never panics.
//
// Integer/float classification compares a number with its 32-bit two's
// complement truncation. Values outside the int32 range are therefore reported
// as floats even when they have no fractional part, and ±Inf is a float. This
// mirrors the established behavior and is only exact within int32 range.
package types

import (
	"math"
	"reflect"
)

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsFunction reports whether v is a non-nil function value.
func IsFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

// IsString reports whether v is a string.
func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

// NotString is the negation of IsString.
func NotString(v any) bool {
	return !IsString(v)
}

// IsNumber reports whether v holds a numeric value. NaN is not a number.
func IsNumber(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f)
}

// IsInteger reports whether v is a number equal to its 32-bit truncation.
func IsInteger(v any) bool {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return false
	}
	return f == float64(toInt32(f))
}

// NotInteger is the negation of IsInteger.
func NotInteger(v any) bool {
	return !IsInteger(v)
}

// IsFloat reports whether v is a number that differs from its 32-bit
// truncation.
func IsFloat(v any) bool {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return false
	}
	return f != float64(toInt32(f))
}

// IsNull reports whether v is the untyped nil.
func IsNull(v any) bool {
	return v == nil
}

// IsVoid reports whether v is nil or a typed nil (pointer, map, slice,
// channel, function or interface).
func IsVoid(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsEmptyObject reports whether v has no enumerable content: void values,
// zero-length maps, slices, arrays, strings and channels, and structs without
// fields. Pointers are followed. Scalars have no keys and count as empty.
func IsEmptyObject(v any) bool {
	if IsVoid(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String, reflect.Chan:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.NumField() == 0
	default:
		return true
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

// toFloat widens any numeric kind to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt32 truncates toward zero and wraps modulo 2^32. NaN and ±Inf map to 0.
// A direct int32 conversion is implementation-defined out of range.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Mod(math.Trunc(f), 1<<32)
	if t < 0 {
		t += 1 << 32
	}
	return int32(uint32(t))
}
