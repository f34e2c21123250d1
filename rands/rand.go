package rands

import (
	"math"
	"reflect"
)

// floatSteps is the number of equal steps a float range is split into.
// Draws pick one of the floatSteps+1 grid points, both ends included.
const floatSteps = 1 << 53

// Range returns a value uniformly distributed over [low, high], both ends
// included. A nil src draws from Global().
//
// low > high is rejected with an *InvalidRangeError before anything is drawn
// from src, and so are NaN or infinite float bounds.
func Range[T Number](src Source, low, high T) (T, error) {
	if isFloat[T]() {
		return floatRange(src, low, high)
	}
	return intRange(src, low, high)
}

// MustRange is like Range but panics on an invalid range.
func MustRange[T Number](src Source, low, high T) T {
	v, err := Range(src, low, high)
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns a value uniformly distributed over [low, high] for any integer type.
func Int[T Integer](src Source, low, high T) (T, error) {
	return intRange(src, low, high)
}

// Float returns a value uniformly distributed over [low, high] for float32 and float64.
func Float[T Floating](src Source, low, high T) (T, error) {
	return floatRange(src, low, high)
}

// Validate reports whether [low, high] can be drawn from.
func Validate[T Number](low, high T) error {
	if isFloat[T]() && (!finite(float64(low)) || !finite(float64(high))) {
		return newNonFiniteRange(low, high)
	}
	if low > high {
		return newInvalidRange(low, high)
	}
	return nil
}

func intRange[T Number](src Source, low, high T) (T, error) {
	if low > high {
		return low, newInvalidRange(low, high)
	}
	if low == high {
		return low, nil
	}
	if src == nil {
		src = Global()
	}

	// high+1 can overflow T, so the inclusive width is counted in uint64
	// two's complement arithmetic which is exact for every integer type.
	span := uint64(high) - uint64(low)
	if span == math.MaxUint64 {
		return T(src.Uint64()), nil
	}
	return T(uint64(low) + src.Uint64N(span+1)), nil
}

func floatRange[T Number](src Source, low, high T) (T, error) {
	lf, hf := float64(low), float64(high)
	if !finite(lf) || !finite(hf) {
		return low, newNonFiniteRange(low, high)
	}
	if low > high {
		return low, newInvalidRange(low, high)
	}
	if low == high {
		return low, nil
	}
	if src == nil {
		src = Global()
	}

	t := float64(src.Uint64N(floatSteps+1)) / floatSteps
	// interpolating from both ends keeps t == 0 and t == 1 exact and cannot
	// overflow even when high-low exceeds MaxFloat64.
	v := T(lf*(1-t) + hf*t)
	if v < low {
		return low, nil
	}
	if v > high {
		return high, nil
	}
	return v, nil
}

func isFloat[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
