package zhistogram

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zndarray"
	"github.com/torlangballe/zhist/ztesting"
	"go.uber.org/multierr"
)

func edgesTo(n int) []float64 {
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = float64(i)
	}
	return edges
}

func mustNew[N int | float64](t *testing.T, edges ...[]float64) *Histogram[N] {
	h, err := New[N](edges...)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustValues[N int | float64](t *testing.T, edges []float64, values []N) *Histogram[N] {
	h, err := NewWithValues(edges, values)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestNew(t *testing.T) {
	zlog.Warn("TestNew")
	h := mustNew[float64](t, edgesTo(3))
	ztesting.Equal(t, "rank", h.Rank(), 1)
	ztesting.Equal(t, "bins", h.BinCount(), 3)
	ztesting.EqualSlices(t, "zeroed", h.Values(), []float64{0, 0, 0})

	_, err := New[float64]()
	ztesting.ErrorIs(t, "no axes", err, ErrBin)
	_, err = New[float64]([]float64{1})
	ztesting.ErrorIs(t, "single edge", err, ErrBin)
	_, err = New[int]([]float64{0, 2, 1})
	ztesting.ErrorIs(t, "descending", err, ErrBin)

	_, err = NewWithValues(edgesTo(3), []float64{1, 2})
	ztesting.ErrorIs(t, "values for wrong bin count", err, ErrBin)

	h2, err := New[int](edgesTo(2), edgesTo(3))
	ztesting.NoError(t, "rank 2", err)
	ztesting.EqualSlices(t, "bin counts", h2.BinCounts(), []int{2, 3})
	ztesting.Equal(t, "total bins", h2.BinCount(), 6)

	data, _ := zndarray.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	h2, err = NewWithData(data, edgesTo(2), edgesTo(3))
	ztesting.NoError(t, "with data", err)
	ztesting.Equal(t, "at 1,2", h2.At(1, 2), 6)
	data.Set(100, 1, 2)
	ztesting.Equal(t, "data adopted as copy", h2.At(1, 2), 6)
	_, err = NewWithData(data, edgesTo(3), edgesTo(2))
	ztesting.ErrorIs(t, "transposed shape", err, ErrBin)
}

func TestBinCountForEdges(t *testing.T) {
	for n := 0; n < 20; n++ {
		var edges []float64
		if n > 0 {
			edges = edgesTo(n)
		}
		h := mustNew[float64](t, edges)
		ztesting.Equal(t, fmt.Sprint("bins for ", n), h.BinCount(), n)
	}
}

func TestAccessorsIdempotent(t *testing.T) {
	h := mustNew[float64](t, []float64{0, 1, 3, 7})
	c1 := h.Centers()
	c2 := h.Centers()
	ztesting.EqualSlices(t, "centers", c1, c2)
	ztesting.EqualSlices(t, "center values", c1, []float64{0.5, 2, 5})
	ztesting.EqualSlices(t, "low edges", h.LowEdges(), h.LowEdges())
	ztesting.EqualSlices(t, "low edge values", h.LowEdges(), []float64{0, 1, 3})
	e := h.Edges()
	e[0] = -100
	ztesting.Equal(t, "edges are a copy", h.Edges()[0], 0.0)
}

func TestSetData(t *testing.T) {
	h := mustNew[float64](t, edgesTo(3))
	h.SetOverflow(5)
	h.SetUnderflow(2)
	err := h.SetValues([]float64{0, 0, 0})
	ztesting.NoError(t, "set", err)
	ztesting.Equal(t, "overflow reset", h.Overflow(), 0.0)
	ztesting.Equal(t, "underflow reset", h.Underflow(), 0.0)

	err = h.SetValues([]float64{1, 2})
	ztesting.ErrorIs(t, "too few", err, ErrBin)
	err = h.SetValues([]float64{1, 2, 3, 4})
	ztesting.ErrorIs(t, "too many", err, ErrBin)

	values := []float64{1, 2, 3}
	h.SetValues(values)
	values[0] = 100
	ztesting.Equal(t, "no aliasing", h.At(0), 1.0)

	h2 := mustNew[float64](t, edgesTo(2), edgesTo(2))
	err = h2.SetValues([]float64{1, 2, 3, 4})
	ztesting.ErrorIs(t, "flat values on rank 2", err, ErrBin)
}

func TestRebind(t *testing.T) {
	h := mustValues(t, edgesTo(3), []float64{1, 2, 3})
	h.SetOverflow(4)
	err := h.Rebind(0, []float64{0, 10, 20, 30})
	ztesting.NoError(t, "same count", err)
	ztesting.EqualSlices(t, "data kept", h.Values(), []float64{1, 2, 3})
	ztesting.Equal(t, "overflow kept", h.Overflow(), 4.0)

	err = h.Rebind(0, []float64{5})
	ztesting.ErrorIs(t, "single edge", err, ErrBin)
	ztesting.EqualSlices(t, "unchanged", h.Edges(), []float64{0, 10, 20, 30})

	err = h.Rebind(0, edgesTo(5))
	ztesting.NoError(t, "new count", err)
	ztesting.EqualSlices(t, "zero filled", h.Values(), []float64{0, 0, 0, 0, 0})
	ztesting.Equal(t, "overflow reset", h.Overflow(), 0.0)

	err = h.Rebind(1, edgesTo(5))
	ztesting.ErrorIs(t, "no such axis", err, ErrBin)
}

func TestSetBins(t *testing.T) {
	h := mustNew[int](t, edgesTo(2), edgesTo(3))
	h.Set(7, 1, 1)
	err := h.SetBins(edgesTo(2))
	ztesting.ErrorIs(t, "wrong axis count", err, ErrBin)

	err = h.SetBins([]float64{1}, []float64{3, 2})
	ztesting.ErrorIs(t, "invalid axes", err, ErrBin)
	ztesting.Equal(t, "both axes reported", len(multierr.Errors(err)), 2)
	ztesting.Equal(t, "unchanged on error", h.At(1, 1), 7)

	err = h.SetBins([]float64{0, 5, 6}, []float64{0, 1, 2, 3})
	ztesting.NoError(t, "same counts", err)
	ztesting.Equal(t, "kept", h.At(1, 1), 7)

	err = h.SetBins(edgesTo(2), edgesTo(4))
	ztesting.NoError(t, "new counts", err)
	ztesting.EqualSlices(t, "shape", h.Data().Shape(), []int{2, 4})
	ztesting.Equal(t, "cleared", h.Integral(true), 0)
}

func TestIndexing(t *testing.T) {
	h := mustNew[float64](t, edgesTo(2), edgesTo(3))
	err := h.Put(3, 1, 2)
	ztesting.NoError(t, "put", err)
	v, err := h.Get(1, 2)
	ztesting.NoError(t, "get", err)
	ztesting.Equal(t, "value", v, 3.0)
	_, err = h.Get(2, 0)
	ztesting.Different(t, "out of range", err, nil)
	_, err = h.Get(1)
	ztesting.Different(t, "too few indexes", err, nil)

	defer func() {
		ztesting.Different(t, "At panics", recover(), nil)
	}()
	h.At(5, 5)
}

func TestSlice(t *testing.T) {
	h := mustValues(t, edgesTo(4), []float64{1, 2, 3, 4})
	h.SetOverflow(9)
	s, err := h.Slice(Span{Start: 1, Stop: 3})
	ztesting.NoError(t, "slice", err)
	ztesting.EqualSlices(t, "edges", s.Edges(), []float64{1, 2, 3})
	ztesting.EqualSlices(t, "values", s.Values(), []float64{2, 3})
	ztesting.Equal(t, "edges one more than values", len(s.Edges()), len(s.Values())+1)
	ztesting.Equal(t, "no flows", s.Overflow(), 0.0)
	s.Set(100, 0)
	ztesting.Equal(t, "independent", h.At(1), 2.0)

	_, err = h.Slice(Span{Start: 3, Stop: 1})
	ztesting.ErrorIs(t, "reversed", err, ErrBin)
	_, err = h.Slice(Span{Start: 0, Stop: 5})
	ztesting.ErrorIs(t, "beyond", err, ErrBin)
	_, err = h.Slice(Span{Start: 0, Stop: 1}, Span{Start: 0, Stop: 1})
	ztesting.ErrorIs(t, "span count", err, ErrBin)

	ztesting.EqualSlices(t, "clamped data", h.SliceData(Span{Start: -5, Stop: 100}).Values(), []float64{1, 2, 3, 4})
	ztesting.Equal(t, "reversed data empty", h.SliceData(Span{Start: 3, Stop: 1}).Size(), 0)

	data, _ := zndarray.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	h2, _ := NewWithData(data, []float64{0, 10, 20}, edgesTo(3))
	s2, err := h2.Slice(Span{Start: 1, Stop: 2}, Span{Start: 1, Stop: 3})
	ztesting.NoError(t, "rank 2", err)
	ztesting.EqualSlices(t, "axis 0", s2.AxisEdges(0), []float64{10, 20})
	ztesting.EqualSlices(t, "axis 1", s2.AxisEdges(1), []float64{1, 2, 3})
	ztesting.EqualSlices(t, "rank 2 values", s2.Values(), []int{5, 6})
	ztesting.EqualSlices(t, "missing span taken whole", h2.SliceData(Span{Start: 0, Stop: 1}).Values(), []int{1, 2, 3})
}

func TestCopy(t *testing.T) {
	h := mustValues(t, edgesTo(2), []int{1, 2})
	h.Fill(-1)
	c := h.Copy()
	c.Set(10, 0)
	c.Fill(0.5)
	ztesting.Equal(t, "copied-from value", h.At(0), 1)
	ztesting.Equal(t, "copied-from stats", h.Stats(0).Count, 1)
	ztesting.Equal(t, "copied underflow", c.Underflow(), 1)
}

func TestReader(t *testing.T) {
	var r Reader = mustValues(t, edgesTo(2), []int{3, 4})
	ztesting.EqualSlices(t, "floats", r.Float64s(), []float64{3, 4})
	ztesting.EqualSlices(t, "edges", r.AxisEdges(0), []float64{0, 1, 2})
	under, over := r.Flows()
	ztesting.Equal(t, "flows", under+over, 0.0)
}

func TestIntegralAndStats(t *testing.T) {
	h := mustValues(t, []float64{0, 1, 2}, []float64{1, 1})
	h.SetUnderflow(3)
	ztesting.Equal(t, "integral", h.Integral(false), 2.0)
	ztesting.Equal(t, "integral with flows", h.Integral(true), 5.0)
	ztesting.AlmostEqual(t, "mean", h.Mean(), 1, 1e-12)
	ztesting.AlmostEqual(t, "std dev", h.StdDev(), 0.5, 1e-12)
	i, v := h.MaxBin()
	ztesting.Equal(t, "max bin", i, 0)
	ztesting.Equal(t, "max value", v, 1.0)

	empty := mustNew[float64](t, edgesTo(3))
	ztesting.Equal(t, "empty mean", math.IsNaN(empty.Mean()), true)

	q := mustValues(t, edgesTo(4), []float64{1, 1, 1, 1})
	ztesting.AlmostEqual(t, "median", q.Quantile(0.5), 2, 1e-12)
	ztesting.AlmostEqual(t, "q 0.25", q.Quantile(0.25), 1, 1e-12)
	ztesting.AlmostEqual(t, "q 1", q.Quantile(1), 4, 1e-12)
	ztesting.AlmostEqual(t, "q 0.1 interpolates", q.Quantile(0.1), 0.4, 1e-12)
	for i := 1; i < 10; i++ {
		p := float64(i) / 10
		ztesting.LessThan(t, "quantile ascends", q.Quantile(p), q.Quantile(p+0.05))
		ztesting.GreaterThan(t, "quantile above first edge", q.Quantile(p), q.Edges()[0])
	}
}

func TestFormat(t *testing.T) {
	h := mustValues(t, edgesTo(2), []float64{1, 2})
	ztesting.Equal(t, "string", h.String(), "Histogram[float64](axis0=[0 1 2] data=[1 2])")
	h.SetOverflow(1)
	ztesting.Equal(t, "string with flows", h.String(), "Histogram[float64](axis0=[0 1 2] data=[1 2] under=0 over=1)")

	var sb strings.Builder
	err := h.Format(&sb, FormatOpts{BarWidth: 4})
	ztesting.NoError(t, "format", err)
	ztesting.Equal(t, "table", sb.String(), "[0, 1)  1  ##\n[1, 2)  2  ####\n")
	ztesting.EqualSlices(t, "high edges", h.HighEdges(), []float64{1, 2})

	sb.Reset()
	h.Format(&sb, FormatOpts{ShowFlows: true})
	ztesting.Equal(t, "table with flows", sb.String(), "< 0     0\n[0, 1)  1\n[1, 2)  2\n>= 2    1\n")
}

func TestErrorsWrapSentinels(t *testing.T) {
	h := mustNew[float64](t, edgesTo(2))
	err := h.SetValues([]float64{1})
	ztesting.Equal(t, "is bin error", errors.Is(err, ErrBin), true)
	ztesting.Equal(t, "not shape mismatch", errors.Is(err, ErrShapeMismatch), false)
}
