package zhistogram

import (
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
)

// MergeBins joins every count consecutive bins of a rank 1 histogram into one, the last may have fewer.
// Each new bin is the sum of the bins it replaces or, if areaConserving, their
// width-weighted sum divided by the new bin's width.
// Underflow and overflow are reset, as the data is replaced.
func (h *Histogram[N]) MergeBins(count int, areaConserving bool) error {
	if h.Rank() != 1 {
		return zlog.NewError(ErrBin, "can only merge bins of rank 1 histogram, not", h.Rank())
	}
	axis := h.axes[0]
	merged, err := axis.Merged(count)
	if err != nil {
		return err
	}
	edges := axis.Edges()
	old := h.data.Values()
	values := make([]N, merged.BinCount())
	for m := range values {
		start := m * count
		stop := min(start+count, len(old))
		if !areaConserving {
			var sum N
			for _, v := range old[start:stop] {
				sum += v
			}
			values[m] = sum
			continue
		}
		var area float64
		for j := start; j < stop; j++ {
			area += float64(old[j]) * (edges[j+1] - edges[j])
		}
		width := edges[stop] - edges[start]
		if width == 0 && !zmath.IsReal[N]() {
			zlog.Debug("merged zero-width bin", m, "set to 0")
			continue
		}
		values[m] = N(area / width)
	}
	zlog.Debug("merge bins", count, areaConserving, axis.BinCount(), "->", merged.BinCount())
	err = h.SetBins(merged.Edges())
	if err != nil {
		return err
	}
	return h.SetValues(values)
}
