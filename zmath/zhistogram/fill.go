package zhistogram

import (
	"math"

	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zbinning"
)

// Fill adds 1 to the bin containing value. See FillWeighted.
func (h *Histogram[N]) Fill(value float64) error {
	return h.FillWeighted(value, 1)
}

// FillWeighted adds weight to the bin of a rank 1 histogram containing value.
// Values below the first edge go to Underflow, at or above the last edge to Overflow.
// NaN is ignored.
func (h *Histogram[N]) FillWeighted(value float64, weight N) error {
	err := h.checkFillable1D()
	if err != nil {
		return err
	}
	h.fill1D(value, weight)
	return nil
}

// FillBatch fills each of values, with weights[i] or 1 if weights is nil.
func (h *Histogram[N]) FillBatch(values []float64, weights []N) error {
	if weights != nil && len(weights) != len(values) {
		return zlog.NewError(ErrShapeMismatch, "fill weights", len(weights), "!= values", len(values))
	}
	err := h.checkFillable1D()
	if err != nil {
		return err
	}
	for i, v := range values {
		var w N = 1
		if weights != nil {
			w = weights[i]
		}
		h.fill1D(v, w)
	}
	return nil
}

// FillPoint adds weight to the bin containing the point with one coordinate per axis.
// For rank > 1, points outside the edges of any axis are dropped.
func (h *Histogram[N]) FillPoint(weight N, coords ...float64) error {
	if len(coords) != h.Rank() {
		return zlog.NewError(ErrShapeMismatch, "point has", len(coords), "coordinates, histogram rank is", h.Rank())
	}
	if h.Rank() == 1 {
		return h.FillWeighted(coords[0], weight)
	}
	h.fillND(coords, weight)
	return nil
}

// FillPoints is FillPoint for each of points, weighted as FillBatch.
func (h *Histogram[N]) FillPoints(points [][]float64, weights []N) error {
	if weights != nil && len(weights) != len(points) {
		return zlog.NewError(ErrShapeMismatch, "fill weights", len(weights), "!= points", len(points))
	}
	for i, p := range points {
		if len(p) != h.Rank() {
			return zlog.NewError(ErrShapeMismatch, "point", i, "has", len(p), "coordinates, histogram rank is", h.Rank())
		}
	}
	if h.Rank() == 1 {
		err := h.checkFillable1D()
		if err != nil {
			return err
		}
	}
	for i, p := range points {
		var w N = 1
		if weights != nil {
			w = weights[i]
		}
		if h.Rank() == 1 {
			h.fill1D(p[0], w)
			continue
		}
		h.fillND(p, w)
	}
	return nil
}

func (h *Histogram[N]) checkFillable1D() error {
	if h.Rank() != 1 {
		return zlog.NewError(ErrShapeMismatch, "single value fill on rank", h.Rank(), "histogram")
	}
	if h.axes[0].BinCount() == 0 {
		return zlog.NewError(ErrBin, "can't fill histogram without bins")
	}
	return nil
}

func (h *Histogram[N]) fill1D(value float64, weight N) {
	if math.IsNaN(value) {
		return
	}
	bin, place := h.axes[0].Locate(value)
	switch place {
	case zbinning.Below:
		h.underflow += weight
	case zbinning.Above:
		h.overflow += weight
	case zbinning.Inside:
		h.data.Values()[bin] += weight
	default:
		return
	}
	h.stats[0].AddWeighted(value, float64(weight))
}

func (h *Histogram[N]) fillND(coords []float64, weight N) {
	offset := 0
	for i, a := range h.axes {
		bin, place := a.Locate(coords[i])
		if place != zbinning.Inside {
			return
		}
		offset = offset*a.BinCount() + bin
	}
	h.data.Values()[offset] += weight
	for i, c := range coords {
		h.stats[i].AddWeighted(c, float64(weight))
	}
}
