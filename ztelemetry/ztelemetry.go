// Package ztelemetry exposes histograms as prometheus metrics.
package ztelemetry

import (
	"math"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath/zhistogram"
)

// HistogramCollector reports a rank 1 histogram as a prometheus histogram each time it is collected.
// Each edge is a bucket upper bound, with the underflow counted in the first.
// The sum is estimated from the bin centers.
type HistogramCollector struct {
	Locker sync.Locker // if set, held while reading the histogram, which must be locked with it when changed too
	desc   *prometheus.Desc
	reader zhistogram.Reader
}

func NewHistogramCollector(name, help string, reader zhistogram.Reader, labels prometheus.Labels) *HistogramCollector {
	c := &HistogramCollector{}
	c.desc = prometheus.NewDesc(name, help, nil, labels)
	c.reader = reader
	return c
}

func (c *HistogramCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *HistogramCollector) Collect(ch chan<- prometheus.Metric) {
	if c.Locker != nil {
		c.Locker.Lock()
		defer c.Locker.Unlock()
	}
	count, sum, buckets, err := PromBuckets(c.reader)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	m, err := prometheus.NewConstHistogram(c.desc, count, sum, buckets)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	ch <- m
}

// PromBuckets converts a rank 1 histogram to prometheus' cumulative buckets keyed by upper bound.
// Bin values are rounded to whole counts, negative ones count as 0.
func PromBuckets(r zhistogram.Reader) (count uint64, sum float64, buckets map[float64]uint64, err error) {
	if r.Rank() != 1 {
		return 0, 0, nil, zlog.NewError(zhistogram.ErrBin, "only rank 1 histograms are prometheus histograms, not rank", r.Rank())
	}
	edges := r.AxisEdges(0)
	under, over := r.Flows()
	buckets = map[float64]uint64{}
	cum := wholeCount(under)
	if len(edges) != 0 {
		buckets[edges[0]] = cum
	}
	for i, v := range r.Float64s() {
		n := wholeCount(v)
		cum += n
		buckets[edges[i+1]] = cum
		sum += float64(n) * (edges[i] + edges[i+1]) / 2
	}
	count = cum + wholeCount(over)
	return count, sum, buckets, nil
}

func wholeCount(v float64) uint64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return uint64(math.Round(v))
}

// NewRegistry returns a registry with the Go runtime and process collectors, and cs.
func NewRegistry(cs ...prometheus.Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	cs = append(cs, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	for _, c := range cs {
		err := reg.Register(c)
		if err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Handler serves reg's metrics in the prometheus exposition format, to be mounted at /metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
