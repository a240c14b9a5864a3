// Package zbucket aggregates position/value samples arriving in position order into repeating periods.
package zbucket

import (
	"math"

	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
	"github.com/torlangballe/zhist/zmath/zhistogram"
)

type Type string

// Filter accepts pos+values, aggregating all that are within a repeating pos period.
// It assumes the positions are coming in order.
// With a Nearest type, it aggregates on the pos nearest the middle of the period, storing its value too.
// With a Histogram type, each period's values are filled into a histogram of Edges.
type Filter struct {
	Result
	Type    Type
	GotFunc func(result Result, periodIndex int)

	Period   float64
	StartPos float64
	Edges    []float64
}

type Result struct {
	CurrentCellPos     float64
	BestVal            float64
	ValueSum           float64
	BestPos            float64
	BestPayload        any
	FirstPayload       any
	LastPayload        any
	MaxVal             float64
	MaxPayload         any
	MinPayload         any
	MinVal             float64
	Count              int
	BestIndex          int                                          // how far into Count inputs BestVal is
	IsFlushedWithin    bool                                         // true if this result is due to a outside-forced flush
	IsBestOverrideFunc func(f *Filter, payload any) (best, set bool) // if set, best decides if payload is the new best, otherwise normal method
	Histogram          *zhistogram.Histogram[int]                   // a new one for each period, with Type Histogram
}

const (
	Nearest   Type = "nearest"
	Largest   Type = "largest"
	Histogram Type = "histogram"
)

// NewFilter makes a filter of periods starting at start.
// A Histogram type needs at least two edges for its histograms.
func NewFilter(start, period float64, t Type, edges ...float64) (*Filter, error) {
	if t == Histogram && len(edges) < 2 {
		return nil, zlog.NewError(zhistogram.ErrBin, "bucket histogram needs at least 2 edges, got", len(edges))
	}
	f := &Filter{}
	f.Type = t
	f.StartPos = start
	f.Edges = edges
	if f.Type == Histogram {
		err := f.newHistogram()
		if err != nil {
			return nil, err
		}
	}
	f.Period = period
	f.CurrentCellPos = start
	f.BestPayload = nil
	return f, nil
}

func (f *Filter) newHistogram() error {
	h, err := zhistogram.New[int](f.Edges)
	if err != nil {
		return zlog.Wrap(err, "bucket histogram")
	}
	f.Histogram = h
	return nil
}

func (f *Filter) Flush() {
	f.FlushWithEndPos(math.NaN())
}

// FlushWithEndPos calls GotFunc with the current period's result if it has any values.
// A NaN atPos means the flush is forced from outside.
func (f *Filter) FlushWithEndPos(atPos float64) {
	if f.BestPayload == nil {
		return
	}
	f.IsFlushedWithin = (math.IsNaN(atPos) || atPos < f.CurrentCellPos+f.Period)
	periodIndex := int((f.CurrentCellPos - f.StartPos) / f.Period)
	if f.GotFunc != nil {
		f.GotFunc(f.Result, periodIndex)
	}
	f.BestPayload = nil
	f.LastPayload = nil
	if f.Type == Histogram {
		// GotFunc may keep the histogram it got
		zlog.OnError(f.newHistogram())
	}
}

func (f *Filter) StartForPos(pos float64) float64 {
	return f.StartPos + zmath.RoundToModF64(pos-f.StartPos, f.Period)
}

func (f *Filter) aggregate(payload any, pos, val float64) {
	f.LastPayload = payload
	f.Count++
	f.ValueSum += val
	if f.BestPayload == nil {
		f.ValueSum = val
		f.Count = 1
		f.MinVal = val
		f.MaxVal = val
		f.FirstPayload = payload
		f.MaxPayload = payload
		f.MinPayload = payload
		f.BestPayload = payload
		f.BestPos = pos
		f.BestVal = val
		f.BestIndex = 0
		f.CurrentCellPos = f.StartForPos(pos)
		if f.Type == Histogram {
			zlog.OnError(f.Histogram.Fill(val), "bucket fill")
		}
		return
	}
	if f.MinVal > val {
		f.MinVal = val
		f.MinPayload = payload
	}
	if f.MaxVal < val {
		f.MaxVal = val
		f.MaxPayload = payload
	}
	if f.Type == Histogram {
		zlog.OnError(f.Histogram.Fill(val), "bucket fill")
	}
	var add bool
	if f.IsBestOverrideFunc != nil {
		best, set := f.IsBestOverrideFunc(f, payload)
		if set && !best {
			return
		}
		add = set
	}
	if !add {
		switch f.Type {
		case Nearest:
			mid := f.CurrentCellPos + f.Period/2
			add = (math.Abs(f.BestPos-mid) > math.Abs(pos-mid))
		case Largest:
			add = (val > f.BestVal)
		case Histogram:
			add = true
		}
	}
	if add {
		f.BestIndex = f.Count - 1
		f.BestPos = pos
		f.BestVal = val
		f.BestPayload = payload
	}
}

// Set adds a value at pos, flushing the current period first if pos is beyond it.
// Positions before the current period are logged and ignored.
func (f *Filter) Set(payload any, pos, val float64) {
	if pos < f.CurrentCellPos {
		zlog.Error(nil, "val before start:", payload, pos, f.CurrentCellPos)
		return
	}
	if pos >= f.CurrentCellPos+f.Period {
		f.FlushWithEndPos(pos)
	}
	f.aggregate(payload, pos, val)
}

func (f *Filter) SetValueInPosRange(payload any, posStart, posEnd, val float64) {
	if posStart < f.CurrentCellPos || posEnd < f.CurrentCellPos {
		zlog.Error(nil, "val before start:", payload, posStart, posEnd, f.CurrentCellPos)
		return
	}
	for pos := posStart; pos <= posEnd; pos += f.Period {
		f.Set(payload, pos, val)
	}
}
