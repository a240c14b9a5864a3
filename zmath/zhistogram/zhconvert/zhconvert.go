// Package zhconvert makes zhistogram histograms from histograms of other libraries.
//
// Each foreign kind is read by an Adapter, which exposes it as a Source of edges, bin contents and flows.
// A Converter tries its adapters in order.
package zhconvert

import (
	"errors"
	"fmt"

	"github.com/torlangballe/zhist/zdict"
	"github.com/torlangballe/zhist/zerrors"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zhistogram"
)

var ErrNoAdapter = errors.New("no adapter for histogram type")

// Source is a rank 1 histogram as bin edges, one content per bin, and the counts outside the edges.
type Source interface {
	BinEdges() []float64
	BinContents() []float64
	Underflow() float64
	Overflow() float64
}

// Adapter reads one kind of foreign histogram.
// Source returns false if foreign is not of the kind, and an error if it is but can't be read.
type Adapter interface {
	Name() string
	Source(foreign any) (Source, bool, error)
}

type Opts struct {
	IgnoreFlows bool // Leave underflow and overflow of the result at 0
}

type Converter struct {
	adapters []Adapter
}

// NewConverter returns a Converter trying adapters in the order given.
func NewConverter(adapters ...Adapter) *Converter {
	return &Converter{adapters: adapters}
}

// Register adds an adapter, tried after the existing ones.
func (c *Converter) Register(a Adapter) {
	c.adapters = append(c.adapters, a)
}

func (c *Converter) Adapters() []Adapter {
	return append([]Adapter{}, c.adapters...)
}

// Convert makes a float64 histogram from foreign using the first adapter that handles it.
// A *zhistogram.Histogram[float64] is copied.
func (c *Converter) Convert(foreign any, opts Opts) (*zhistogram.Histogram[float64], error) {
	if h, is := foreign.(*zhistogram.Histogram[float64]); is && h != nil {
		n := h.Copy()
		if opts.IgnoreFlows {
			n.SetUnderflow(0)
			n.SetOverflow(0)
		}
		return n, nil
	}
	foreignType := fmt.Sprintf("%T", foreign)
	for _, a := range c.adapters {
		src, handles, err := a.Source(foreign)
		if !handles {
			continue
		}
		dict := zdict.Dict{"adapter": a.Name(), "type": foreignType}
		if err != nil {
			return nil, zerrors.MakeContextError(dict, "read histogram", err)
		}
		h, err := FromSource(src, opts)
		if err != nil {
			return nil, zerrors.MakeContextError(dict, "convert histogram", err)
		}
		zlog.Debug("converted", foreignType, "with", a.Name(), h.BinCount(), "bins")
		return h, nil
	}
	return nil, zerrors.MakeContextError(zdict.Dict{"type": foreignType}, "convert histogram", ErrNoAdapter)
}

// FromSource makes a histogram with src's edges and contents, and its flows unless opts.IgnoreFlows.
func FromSource(src Source, opts Opts) (*zhistogram.Histogram[float64], error) {
	h, err := zhistogram.NewWithValues(src.BinEdges(), src.BinContents())
	if err != nil {
		return nil, err
	}
	if !opts.IgnoreFlows {
		h.SetUnderflow(src.Underflow())
		h.SetOverflow(src.Overflow())
	}
	return h, nil
}

// source is the Source the adapters in this package produce.
type source struct {
	edges     []float64
	contents  []float64
	underflow float64
	overflow  float64
}

func (s *source) BinEdges() []float64    { return s.edges }
func (s *source) BinContents() []float64 { return s.contents }
func (s *source) Underflow() float64     { return s.underflow }
func (s *source) Overflow() float64      { return s.overflow }

// NewSource returns a Source of the given values, for adapters outside this package.
func NewSource(edges, contents []float64, underflow, overflow float64) Source {
	return &source{edges: edges, contents: contents, underflow: underflow, overflow: overflow}
}
