package zbinning

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
)

// Linear makes edges from min in steps of step, up to max rounded up to a whole number of steps.
func Linear(step, min, max float64) (Scheme, error) {
	if !(step > 0) || !(max > min) {
		return Scheme{}, zlog.NewError(ErrBin, "linear edges need step > 0 and max > min:", step, min, max)
	}
	max = min + zmath.RoundUpToModF64(max-min, step)
	count := int(math.Round((max - min) / step))
	edges := make([]float64, count+1)
	for i := range edges {
		edges[i] = min + float64(i)*step
	}
	return New(edges)
}

// Uniform makes count equally wide bins from min to max.
func Uniform(count int, min, max float64) (Scheme, error) {
	if count < 1 || !(max > min) {
		return Scheme{}, zlog.NewError(ErrBin, "uniform edges need count >= 1 and max > min:", count, min, max)
	}
	width := (max - min) / float64(count)
	edges := make([]float64, count+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[count] = max
	return New(edges)
}

// LinearBuckets makes count edges starting at start, width apart, like prometheus bucket bounds.
func LinearBuckets(start, width float64, count int) (Scheme, error) {
	if count < 2 || !(width > 0) {
		return Scheme{}, zlog.NewError(ErrBin, "linear buckets need count >= 2 and width > 0:", start, width, count)
	}
	return New(prometheus.LinearBuckets(start, width, count))
}

// Exponential makes count edges, the first being start, each next factor times the previous.
func Exponential(start, factor float64, count int) (Scheme, error) {
	if count < 2 || !(start > 0) || !(factor > 1) {
		return Scheme{}, zlog.NewError(ErrBin, "exponential edges need count >= 2, start > 0 and factor > 1:", start, factor, count)
	}
	return New(prometheus.ExponentialBuckets(start, factor, count))
}

// FromMaxes makes edges starting at min, with each bin ending at the next of maxes.
func FromMaxes(min float64, maxes ...float64) (Scheme, error) {
	edges := append([]float64{min}, maxes...)
	return New(edges)
}
