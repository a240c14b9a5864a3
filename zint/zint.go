package zint

import "golang.org/x/exp/constraints"

type Integer interface {
	constraints.Integer
}

func Abs[N constraints.Signed](a N) N {
	if a < 0 {
		return -a
	}
	return a
}

func Maximize[N Integer](a *N, b N) bool {
	if *a > b {
		return false
	}
	*a = b
	return true
}

func Minimize[N Integer](a *N, b N) bool {
	if *a < b {
		return false
	}
	*a = b
	return true
}

func Clamp[N Integer](a, min, max N) N {
	if a < min {
		a = min
	}
	if a > max {
		a = max
	}
	return a
}

// Product returns the product of all ns, 1 for none.
func Product[N Integer](ns ...N) N {
	var p N = 1
	for _, n := range ns {
		p *= n
	}
	return p
}
