package zhconvert

import (
	"math"

	"github.com/VividCortex/gohistogram"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/torlangballe/zhist/zdict"
	"github.com/torlangballe/zhist/zfloat"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zhistogram"
	"go.opentelemetry.io/collector/pdata/pmetric"
)

// BinAccessor is a histogram indexed like ROOT's TH1: bins 1 to NBins(),
// with bin 0 the underflow and NBins()+1 the overflow.
// BinLowEdge(NBins()+1) is the high edge of the last bin.
type BinAccessor interface {
	NBins() int
	BinLowEdge(bin int) float64
	BinContent(bin int) float64
}

type BinAccessorAdapter struct{}

func (BinAccessorAdapter) Name() string { return "bin-accessor" }

func (BinAccessorAdapter) Source(foreign any) (Source, bool, error) {
	a, is := foreign.(BinAccessor)
	if !is {
		return nil, false, nil
	}
	n := a.NBins()
	if n < 0 {
		return nil, true, zlog.NewError(zhistogram.ErrBin, "negative bin count", n)
	}
	s := &source{}
	for bin := 1; bin <= n+1; bin++ {
		s.edges = append(s.edges, a.BinLowEdge(bin))
	}
	for bin := 1; bin <= n; bin++ {
		s.contents = append(s.contents, a.BinContent(bin))
	}
	s.underflow = a.BinContent(0)
	s.overflow = a.BinContent(n + 1)
	return s, true, nil
}

// OTelAdapter reads an OpenTelemetry explicit-bounds histogram data point.
// The bounds are the edges, the first bucket is underflow and the last overflow.
// With fewer than two bounds there are no bins: a single bound keeps both flows,
// and a point without bounds has its one bucket as overflow.
type OTelAdapter struct{}

func (OTelAdapter) Name() string { return "otel" }

func (OTelAdapter) Source(foreign any) (Source, bool, error) {
	var dp pmetric.HistogramDataPoint
	switch f := foreign.(type) {
	case pmetric.HistogramDataPoint:
		dp = f
	case *pmetric.HistogramDataPoint:
		dp = *f
	default:
		return nil, false, nil
	}
	bounds := dp.ExplicitBounds().AsRaw()
	counts := dp.BucketCounts().AsRaw()
	s := &source{edges: bounds}
	if len(bounds) == 1 {
		s.edges = nil
	}
	if len(counts) == 0 {
		// a data point may carry only count and sum
		if len(bounds) > 1 {
			s.contents = make([]float64, len(bounds)-1)
		}
		return s, true, nil
	}
	if len(counts) != len(bounds)+1 {
		return nil, true, zlog.NewError(zhistogram.ErrShapeMismatch, len(counts), "bucket counts for", len(bounds), "bounds")
	}
	if len(bounds) == 0 {
		s.overflow = float64(counts[0])
		return s, true, nil
	}
	s.underflow = float64(counts[0])
	s.overflow = float64(counts[len(counts)-1])
	for _, c := range counts[1 : len(counts)-1] {
		s.contents = append(s.contents, float64(c))
	}
	return s, true, nil
}

// PromAdapter reads a prometheus histogram's cumulative buckets.
// Upper bounds are the edges, the first bucket is underflow and samples above the last bound overflow.
type PromAdapter struct{}

func (PromAdapter) Name() string { return "prometheus" }

func (PromAdapter) Source(foreign any) (Source, bool, error) {
	var ph *dto.Histogram
	switch f := foreign.(type) {
	case *dto.Histogram:
		ph = f
	case prometheus.Histogram:
		var m dto.Metric
		err := f.Write(&m)
		if err != nil {
			return nil, true, err
		}
		ph = m.GetHistogram()
	default:
		return nil, false, nil
	}
	s := &source{}
	var prev uint64
	for i, b := range ph.GetBucket() {
		if math.IsInf(b.GetUpperBound(), 1) {
			break
		}
		cum := b.GetCumulativeCount()
		if cum < prev {
			return nil, true, zlog.NewError(zhistogram.ErrBin, "cumulative count decreases at bucket", i)
		}
		s.edges = append(s.edges, b.GetUpperBound())
		if i == 0 {
			s.underflow = float64(cum)
		} else {
			s.contents = append(s.contents, float64(cum-prev))
		}
		prev = cum
	}
	if len(s.edges) == 1 {
		return nil, true, zlog.NewError(zhistogram.ErrBin, "a single bucket bound makes no bins")
	}
	s.overflow = float64(ph.GetSampleCount() - min(prev, ph.GetSampleCount()))
	return s, true, nil
}

// CDFHistogram is a streaming histogram that can tell the fraction of its values at or below x,
// as gohistogram's NumericHistogram and WeightedHistogram do.
type CDFHistogram interface {
	gohistogram.Histogram
	CDF(x float64) float64
	Count() float64
}

// GoHistogramAdapter samples a streaming gohistogram at Edges through its CDF.
// As the CDF includes values at x, a value on an edge counts in the bin below it.
type GoHistogramAdapter struct {
	Edges []float64
}

func (GoHistogramAdapter) Name() string { return "gohistogram" }

func (a GoHistogramAdapter) Source(foreign any) (Source, bool, error) {
	g, is := foreign.(CDFHistogram)
	if !is {
		return nil, false, nil
	}
	if len(a.Edges) < 2 {
		return nil, true, zlog.NewError(zhistogram.ErrBin, "gohistogram adapter needs at least two edges, got", len(a.Edges))
	}
	count := g.Count()
	s := &source{edges: a.Edges}
	if count == 0 {
		s.contents = make([]float64, len(a.Edges)-1)
		return s, true, nil
	}
	prev := g.CDF(a.Edges[0])
	s.underflow = prev * count
	for _, e := range a.Edges[1:] {
		c := g.CDF(e)
		s.contents = append(s.contents, (c-prev)*count)
		prev = c
	}
	s.overflow = (1 - prev) * count
	return s, true, nil
}

// DictAdapter reads a zdict.Dict, such as one decoded from JSON or YAML, with keys
// "edges" and "contents" holding lists of numbers, and optionally "underflow" and "overflow".
type DictAdapter struct{}

func (DictAdapter) Name() string { return "dict" }

func (DictAdapter) Source(foreign any) (Source, bool, error) {
	var d zdict.Dict
	switch f := foreign.(type) {
	case zdict.Dict:
		d = f
	case map[string]any:
		d = zdict.Dict(f)
	default:
		return nil, false, nil
	}
	var err error
	s := &source{}
	s.edges, err = floatList(d["edges"])
	if err != nil {
		return nil, true, zlog.Wrap(err, "edges")
	}
	s.contents, err = floatList(d["contents"])
	if err != nil {
		return nil, true, zlog.Wrap(err, "contents")
	}
	for key, f := range map[string]*float64{"underflow": &s.underflow, "overflow": &s.overflow} {
		v, got := d[key]
		if !got {
			continue
		}
		*f, err = zfloat.GetAny(v)
		if err != nil {
			return nil, true, zlog.Wrap(err, key)
		}
	}
	return s, true, nil
}

func floatList(v any) ([]float64, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return list, nil
	case []any:
		out := make([]float64, len(list))
		for i, a := range list {
			f, err := zfloat.GetAny(a)
			if err != nil {
				return nil, zlog.Wrap(err, "item", i)
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, zlog.NewError("not a list of numbers:", v)
}

// DefaultAdapters returns the adapters needing no configuration.
func DefaultAdapters() []Adapter {
	return []Adapter{BinAccessorAdapter{}, OTelAdapter{}, PromAdapter{}, DictAdapter{}}
}
