// Package safecast implements overflow checked conversions between the unsigned integers of the
// ledger data model and the signed integers used by Go's sql and sort APIs.
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Uint64ToInt converts a uint64 to int, failing when it does not fit.
func Uint64ToInt(value uint64) (int, error) {
	if value > math.MaxInt {
		return 0, fmt.Errorf("value %d exceeds int range", value)
	}

	return cast.ToIntE(value)
}

// Uint64ToInt64 converts a uint64 to int64, failing when it does not fit. SQLite stores
// integers as signed 64 bit values.
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// Int64ToUint64 converts an int64 to uint64, failing for negative values.
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// IntToUint32 converts an int to uint32, failing when it does not fit.
func IntToUint32(value int) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", value)
	}

	return cast.ToUint32E(value)
}
