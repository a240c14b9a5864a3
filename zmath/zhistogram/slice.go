package zhistogram

import (
	"github.com/torlangballe/zhist/zint"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zbinning"
	"github.com/torlangballe/zhist/zmath/zndarray"
)

// Slice returns a new histogram of the bins within spans, one span per axis.
// Each axis keeps edges[Start:Stop+1], so the result has one edge more than bins per axis.
// Underflow and overflow of the result are zero.
func (h *Histogram[N]) Slice(spans ...Span) (*Histogram[N], error) {
	if len(spans) != h.Rank() {
		return nil, zlog.NewError(ErrBin, "slice needs", h.Rank(), "spans, got", len(spans))
	}
	axes := make([]zbinning.Scheme, len(spans))
	for i, s := range spans {
		sub, err := h.axes[i].Sub(s.Start, s.Stop)
		if err != nil {
			return nil, zlog.Wrap(err, "axis", i)
		}
		axes[i] = sub
	}
	data, err := h.data.Sliced(spans...)
	if err != nil {
		return nil, zlog.NewError(ErrBin, err)
	}
	n := &Histogram[N]{axes: axes}
	n.replaceData(data)
	return n, nil
}

// SliceData returns just the values within spans, without edges.
// Unlike Slice it takes any spans: they are clamped to the bin counts,
// reversed spans are empty and axes without a span are taken whole.
func (h *Histogram[N]) SliceData(spans ...Span) zndarray.Array[N] {
	counts := h.BinCounts()
	clamped := make([]Span, len(counts))
	for i, n := range counts {
		if i >= len(spans) {
			clamped[i] = Span{Start: 0, Stop: n}
			continue
		}
		s := spans[i]
		s.Start = zint.Clamp(s.Start, 0, n)
		s.Stop = zint.Clamp(s.Stop, s.Start, n)
		clamped[i] = s
	}
	data, err := h.data.Sliced(clamped...)
	zlog.Assert(err == nil, err, clamped)
	return data
}
