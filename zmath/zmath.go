package zmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float kind a histogram can accumulate.
type Number interface {
	constraints.Integer | constraints.Float
}

type Real interface {
	constraints.Float
}

// IsReal returns true if N is a float kind.
func IsReal[N Number]() bool {
	f := 0.5
	return N(f) != 0
}

func RoundToModF64(n, mod float64) float64 {
	return n - math.Mod(n, mod)
}

func RoundUpToModF64(n, mod float64) float64 {
	r := math.Mod(n, mod)
	if r == 0 {
		return n
	}
	return n + (mod - r)
}

// FloatsOf converts a slice of any Number kind to float64.
func FloatsOf[N Number](ns []N) []float64 {
	fs := make([]float64, len(ns))
	for i, n := range ns {
		fs[i] = float64(n)
	}
	return fs
}
