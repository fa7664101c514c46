// Package safe provides integer conversions with range checks for values decoded from the node API.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer types accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, failing when v is negative or too large.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, failing when v is negative.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int converts v to int, failing when v does not fit.
func Int[T Integer](v T) (int, error) {
	if v < 0 {
		if int64(v) < math.MinInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
		return int(v), nil
	}
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
