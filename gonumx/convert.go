// SPDX-License-Identifier: MIT

// Package gonumx - element-kind conversion to and from float64.
//
// Behavior highlights:
//   - The kind is resolved once per call through reflect, so named element
//     types (type Celsius float64) convert like their underlying kind.
//   - Conversion back is exact-or-error: no silent truncation or wrap-around.

package gonumx

import (
	"math"
	"reflect"

	"github.com/katalvlaran/dynmat/vector"
)

// 2^63 and 2^64 as float64; int64/uint64 conversions are only defined below them.
const (
	_twoTo63 = 9223372036854775808.0
	_twoTo64 = 18446744073709551616.0
)

// kindClass groups reflect kinds by conversion rule.
type kindClass int

const (
	classUnsupported kindClass = iota
	classInt
	classUint
	classFloat
)

// classify RETURNS the conversion class of T.
func classify[T vector.Number]() kindClass {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	default:
		return classUnsupported // complex64, complex128
	}
}

// toFloat64 widens x to float64 under class c. Large 64-bit integers round to
// the nearest representable float64.
func toFloat64[T vector.Number](x T, c kindClass) float64 {
	rv := reflect.ValueOf(x)
	switch c {
	case classInt:
		return float64(rv.Int())
	case classUint:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// fromFloat64 narrows f into T under class c; ok is false when T cannot hold
// f exactly (integers) or at all (float32 overflow).
func fromFloat64[T vector.Number](f float64, c kindClass) (out T, ok bool) {
	rv := reflect.ValueOf(&out).Elem()
	switch c {
	case classInt:
		if f != math.Trunc(f) || f < -_twoTo63 || f >= _twoTo63 {
			return out, false // also catches NaN and ±Inf
		}
		i := int64(f)
		if rv.OverflowInt(i) {
			return out, false
		}
		rv.SetInt(i)
	case classUint:
		if f != math.Trunc(f) || f < 0 || f >= _twoTo64 {
			return out, false
		}
		u := uint64(f)
		if rv.OverflowUint(u) {
			return out, false
		}
		rv.SetUint(u)
	case classFloat:
		if rv.OverflowFloat(f) {
			return out, false
		}
		rv.SetFloat(f)
	default:
		return out, false
	}

	return out, true
}
