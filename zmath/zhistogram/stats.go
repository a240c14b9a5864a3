package zhistogram

import (
	"math"

	"github.com/torlangballe/zhist/zfloat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Integral is the sum of all bins, plus underflow and overflow if includeFlows.
func (h *Histogram[N]) Integral(includeFlows bool) N {
	var sum N
	for _, v := range h.data.Values() {
		sum += v
	}
	if includeFlows {
		sum += h.underflow + h.overflow
	}
	return sum
}

// Mean is the mean of the bin centers weighted by the bin values, NaN if empty or not rank 1.
func (h *Histogram[N]) Mean() float64 {
	mean, _ := h.meanStdDev()
	return mean
}

// StdDev is the population standard deviation of the bin centers weighted by the bin values.
func (h *Histogram[N]) StdDev() float64 {
	_, std := h.meanStdDev()
	return std
}

func (h *Histogram[N]) meanStdDev() (mean, std float64) {
	weights := h.Float64s()
	if h.Rank() != 1 || len(weights) == 0 || floats.Sum(weights) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.PopMeanStdDev(h.Centers(), weights)
}

// MaxBin returns the index and value of the largest bin of a rank 1 histogram, -1 if it has none.
func (h *Histogram[N]) MaxBin() (int, N) {
	var zero N
	if h.Rank() != 1 || h.data.Size() == 0 {
		return -1, zero
	}
	i := floats.MaxIdx(h.Float64s())
	return i, h.data.Values()[i]
}

// Quantile returns the value below which fraction q of the bin contents lie, interpolating within the bin.
// Under/overflow are not counted. NaN if the histogram is empty or not rank 1.
func (h *Histogram[N]) Quantile(q float64) float64 {
	if h.Rank() != 1 || h.data.Size() == 0 {
		return math.NaN()
	}
	cum := make([]float64, h.data.Size())
	floats.CumSum(cum, h.Float64s())
	total := cum[len(cum)-1]
	if total <= 0 {
		return math.NaN()
	}
	q = zfloat.Clamped(q, 0, 1)
	target := q * total
	edges := h.axes[0].Edges()
	prev := 0.0
	for i, c := range cum {
		if c >= target && c > prev {
			t := (target - prev) / (c - prev)
			return edges[i] + t*(edges[i+1]-edges[i])
		}
		prev = c
	}
	return edges[len(edges)-1]
}
