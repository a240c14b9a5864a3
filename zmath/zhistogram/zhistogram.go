// Package zhistogram is a histogram of fixed, ascending bin edges on one or more axes.
//
// Values are filled into the bin whose [low, high) interval contains them.
// A rank 1 histogram counts values outside its edges in Underflow and Overflow, higher ranks drop them.
// Histograms of the same number of bins can be added, subtracted, multiplied and divided, and bins can be merged.
//
// A Histogram is not safe for concurrent use.
package zhistogram

import (
	"errors"
	"slices"

	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
	"github.com/torlangballe/zhist/zmath/zbinning"
	"github.com/torlangballe/zhist/zmath/zndarray"
	"go.uber.org/multierr"
)

var (
	// ErrBin is returned for invalid edges, wrong number of axes, and data not matching the bins.
	ErrBin = zbinning.ErrBin
	// ErrShapeMismatch is returned when operands or fill batches don't have matching sizes.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrDivideByZero is returned by integer division with a zero divisor.
	ErrDivideByZero = errors.New("integer divide by zero")
)

type Span = zndarray.Span

// Histogram has a binning scheme per axis, and a value for each bin in a dense array shaped by the axes' bin counts.
// N is the kind of number accumulated, float64 unless counting integers.
type Histogram[N zmath.Number] struct {
	axes      []zbinning.Scheme
	data      zndarray.Array[N]
	underflow N
	overflow  N
	stats     []zmath.Accumulator
}

// Reader is what a renderer or exporter needs to read a histogram of any number kind.
type Reader interface {
	Rank() int
	BinCounts() []int
	AxisEdges(axis int) []float64
	Float64s() []float64
	Flows() (underflow, overflow float64)
}

// New makes a zero-filled histogram with one axis for each edges slice.
func New[N zmath.Number](edges ...[]float64) (*Histogram[N], error) {
	axes, err := makeAxes(edges)
	if err != nil {
		return nil, err
	}
	h := &Histogram[N]{axes: axes}
	h.replaceData(zndarray.New[N](h.BinCounts()...))
	return h, nil
}

// NewWithData makes a histogram using a copy of data, which must be shaped as the bin counts of edges.
func NewWithData[N zmath.Number](data zndarray.Array[N], edges ...[]float64) (*Histogram[N], error) {
	axes, err := makeAxes(edges)
	if err != nil {
		return nil, err
	}
	h := &Histogram[N]{axes: axes}
	err = h.SetData(data)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// NewWithValues makes a rank 1 histogram with a copy of values, one per bin.
func NewWithValues[N zmath.Number](edges []float64, values []N) (*Histogram[N], error) {
	return NewWithData(zndarray.FromSlice(values), edges)
}

func makeAxes(edges [][]float64) ([]zbinning.Scheme, error) {
	if len(edges) == 0 {
		return nil, zlog.NewError(ErrBin, "a histogram needs edges for at least one axis")
	}
	var err error
	axes := make([]zbinning.Scheme, len(edges))
	for i, e := range edges {
		s, serr := zbinning.New(e)
		if serr != nil {
			err = multierr.Append(err, zlog.Wrap(serr, "axis", i))
			continue
		}
		axes[i] = s
	}
	if err != nil {
		return nil, err
	}
	return axes, nil
}

// replaceData adopts data and clears everything accumulated alongside the old data.
func (h *Histogram[N]) replaceData(data zndarray.Array[N]) {
	zlog.Assert(data.HasShape(h.BinCounts()), "data shape", data.Shape(), "bins", h.BinCounts())
	h.data = data
	var zero N
	h.underflow = zero
	h.overflow = zero
	h.stats = make([]zmath.Accumulator, len(h.axes))
}

func (h *Histogram[N]) Rank() int {
	return len(h.axes)
}

// BinCount is the total number of bins, for rank 1 the number of bins on the axis.
func (h *Histogram[N]) BinCount() int {
	return h.data.Size()
}

func (h *Histogram[N]) BinCounts() []int {
	counts := make([]int, len(h.axes))
	for i, a := range h.axes {
		counts[i] = a.BinCount()
	}
	return counts
}

func (h *Histogram[N]) Axis(i int) zbinning.Scheme {
	return h.axes[i]
}

func (h *Histogram[N]) Axes() []zbinning.Scheme {
	return slices.Clone(h.axes)
}

func (h *Histogram[N]) AxisEdges(axis int) []float64 {
	return h.axes[axis].Edges()
}

// Edges returns the edges of the first axis, which for rank 1 is all of them.
func (h *Histogram[N]) Edges() []float64 {
	return h.axes[0].Edges()
}

func (h *Histogram[N]) LowEdges() []float64 {
	return h.axes[0].LowEdges()
}

func (h *Histogram[N]) HighEdges() []float64 {
	return h.axes[0].HighEdges()
}

func (h *Histogram[N]) Centers() []float64 {
	return h.axes[0].Centers()
}

// Data returns a copy of the bin values.
func (h *Histogram[N]) Data() zndarray.Array[N] {
	return h.data.Clone()
}

// Values returns a copy of the bin values, row-major for rank > 1.
func (h *Histogram[N]) Values() []N {
	return slices.Clone(h.data.Values())
}

func (h *Histogram[N]) Float64s() []float64 {
	return zmath.FloatsOf(h.data.Values())
}

func (h *Histogram[N]) Underflow() N {
	return h.underflow
}

func (h *Histogram[N]) Overflow() N {
	return h.overflow
}

func (h *Histogram[N]) SetUnderflow(n N) {
	h.underflow = n
}

func (h *Histogram[N]) SetOverflow(n N) {
	h.overflow = n
}

func (h *Histogram[N]) Flows() (underflow, overflow float64) {
	return float64(h.underflow), float64(h.overflow)
}

// Stats returns count, weighted sum and extremes of the values filled on axis, including those in under/overflow.
// It is reset whenever the data is replaced.
func (h *Histogram[N]) Stats(axis int) zmath.Accumulator {
	return h.stats[axis]
}

// SetData replaces the bin values with a copy of data, which must have exactly the shape of the bin counts.
// Underflow, overflow and stats are reset.
func (h *Histogram[N]) SetData(data zndarray.Array[N]) error {
	if !data.HasShape(h.BinCounts()) {
		return zlog.NewError(ErrBin, "data incorrect dimensions:", data.Shape(), "!=", h.BinCounts(), "bins")
	}
	h.replaceData(data.Clone())
	return nil
}

// SetValues is SetData for a rank 1 histogram.
func (h *Histogram[N]) SetValues(values []N) error {
	if h.Rank() != 1 {
		return zlog.NewError(ErrBin, "can't set flat values on rank", h.Rank(), "histogram")
	}
	return h.SetData(zndarray.FromSlice(values))
}

// SetBins replaces the edges of all axes, one edges slice per axis.
// If any axis gets a different bin count, the data is replaced with zeros and flows are reset.
// Nothing is changed if any of the edges are invalid.
func (h *Histogram[N]) SetBins(edges ...[]float64) error {
	if len(edges) != h.Rank() {
		return zlog.NewError(ErrBin, "must provide", h.Rank(), "dimensions of bin edges, got", len(edges))
	}
	axes, err := makeAxes(edges)
	if err != nil {
		return err
	}
	h.rebind(axes)
	return nil
}

// Rebind replaces the edges of one axis.
// It is data-destructive: if the bin count changes, all bin values and flows are set to zero.
func (h *Histogram[N]) Rebind(axis int, edges []float64) error {
	if axis < 0 || axis >= h.Rank() {
		return zlog.NewError(ErrBin, "axis", axis, "outside rank", h.Rank())
	}
	s, err := zbinning.New(edges)
	if err != nil {
		return zlog.Wrap(err, "axis", axis)
	}
	axes := slices.Clone(h.axes)
	axes[axis] = s
	h.rebind(axes)
	return nil
}

func (h *Histogram[N]) rebind(axes []zbinning.Scheme) {
	old := h.BinCounts()
	h.axes = axes
	counts := h.BinCounts()
	if slices.Equal(old, counts) {
		return
	}
	if h.data.Size() != 0 {
		zlog.Debug("histogram rebind discards data:", old, "->", counts)
	}
	h.replaceData(zndarray.New[N](counts...))
}

// Get returns the value of the bin at index, one index per axis.
func (h *Histogram[N]) Get(index ...int) (N, error) {
	return h.data.Get(index...)
}

// Put sets the value of the bin at index.
func (h *Histogram[N]) Put(value N, index ...int) error {
	return h.data.Put(value, index...)
}

// At is Get, panicking on a bad index like slice indexing does.
func (h *Histogram[N]) At(index ...int) N {
	return h.data.At(index...)
}

// Set is Put, panicking on a bad index.
func (h *Histogram[N]) Set(value N, index ...int) {
	h.data.Set(value, index...)
}

// Copy returns a histogram sharing no storage with h.
func (h *Histogram[N]) Copy() *Histogram[N] {
	n := *h
	n.axes = slices.Clone(h.axes)
	n.data = h.data.Clone()
	n.stats = slices.Clone(h.stats)
	return &n
}
