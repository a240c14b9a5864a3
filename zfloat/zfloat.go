package zfloat

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

type Slice []float64

// GetAny returns i as a float64 if it is a number, bool or numeric string.
func GetAny(i any) (float64, error) {
	switch n := i.(type) {
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(n, 64)
	}
	val := reflect.ValueOf(i)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(val.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return val.Float(), nil
	case reflect.String:
		return strconv.ParseFloat(val.String(), 64)
	default:
		return 0, errors.New(fmt.Sprint("bad type:", reflect.TypeOf(i)))
	}
}

func Minimize(a *float64, b float64) bool {
	if *a < b {
		return false
	}
	*a = b
	return true
}

func Maximize(a *float64, b float64) bool {
	if *a > b {
		return false
	}
	*a = b
	return true
}

func Clamped(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// KeepFractionDigits rounds f to digits decimals, so 0.30000000000000004 becomes 0.3.
func KeepFractionDigits(f float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(f*p) / p
}

// IsAscending returns the index of the first element smaller than its predecessor, or -1.
// A NaN is never in order.
func (s Slice) IsAscending() int {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] <= s[i]) {
			return i
		}
	}
	if len(s) == 1 && math.IsNaN(s[0]) {
		return 0
	}
	return -1
}
