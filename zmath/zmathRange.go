package zmath

import "github.com/torlangballe/zhist/zwords"

type Range[N int | int64 | float64] struct {
	Valid bool `json:",omitempty"`
	Min   N    `json:",omitempty"`
	Max   N    `json:",omitempty"`
}

type RangeF64 = Range[float64]

func (r *Range[N]) Set(min, max N) {
	r.Min = min
	r.Max = max
	r.Valid = true
}

func MakeRange[N int | int64 | float64](min, max N) Range[N] {
	return Range[N]{Valid: true, Min: min, Max: max}
}

func (r Range[N]) Length() N {
	return r.Max - r.Min
}

func (r Range[N]) Added(n N) Range[N] {
	if !r.Valid {
		r.Valid = true
		r.Min = n
		r.Max = n
		return r
	}
	r.Min = min(r.Min, n)
	r.Max = max(r.Max, n)
	return r
}

func (r *Range[N]) Add(n N) {
	*r = r.Added(n)
}

func (r *Range[N]) NiceString(digits int) string {
	if !r.Valid {
		return "invalid"
	}
	min := zwords.NiceFloat(float64(r.Min), digits)
	max := zwords.NiceFloat(float64(r.Max), digits)
	return min + " - " + max
}

func (r *Range[N]) T(t float64) N {
	return r.Min + N(float64(r.Length())*t)
}

// Contains is true if n is within [Min, Max).
func (r Range[N]) Contains(n N) bool {
	return r.Valid && n >= r.Min && n < r.Max
}

func (r Range[N]) Clamped(n N) N {
	if !r.Valid {
		return n
	}
	if n < r.Min {
		return r.Min
	}
	if n > r.Max {
		return r.Max
	}
	return n
}

