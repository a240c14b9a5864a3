package zhistogram

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/torlangballe/zhist/zstr"
	"github.com/torlangballe/zhist/zwords"
	"gonum.org/v1/gonum/floats"
)

type FormatOpts struct {
	SignificantDigits int     // For edges and values, 0 is 6
	ShowFlows         bool    // Add rows for underflow and overflow
	BarWidth          int     // Width of the largest bar, 0 for no bars
	CriticalValue     float64 // if a bin has value >= this, show it in red. 0 is off
	UseColor          bool
}

// String is a one-line summary with the edges and values of each axis.
func (h *Histogram[N]) String() string {
	var parts []string
	for i, a := range h.axes {
		parts = append(parts, fmt.Sprint("axis", i, "=", a))
	}
	values := zstr.JoinFunc(h.Float64s(), " ", func(f float64) string {
		return zwords.NiceFloat(f, 6)
	})
	parts = append(parts, "data=["+values+"]")
	if h.underflow != 0 || h.overflow != 0 {
		parts = append(parts, fmt.Sprint("under=", h.underflow), fmt.Sprint("over=", h.overflow))
	}
	return fmt.Sprintf("Histogram[%T](%s)", h.underflow, strings.Join(parts, " "))
}

// Format writes the histogram as a table with a row per bin.
// Rank 1 rows have the bin's low and high edge, higher ranks the index of the bin.
func (h *Histogram[N]) Format(w io.Writer, opts FormatOpts) error {
	if opts.SignificantDigits == 0 {
		opts.SignificantDigits = 6
	}
	nice := func(f float64) string {
		return zwords.NiceFloat(f, opts.SignificantDigits)
	}
	values := h.Float64s()
	var maxVal float64
	if len(values) != 0 {
		maxVal = floats.Max(values)
	}
	if opts.ShowFlows {
		maxVal = math.Max(maxVal, math.Max(float64(h.underflow), float64(h.overflow)))
	}
	tw := zstr.NewTabWriter(w)
	tw.RighAdjustedColumns[1] = true
	row := func(label string, v float64) {
		str := nice(v)
		if opts.UseColor && opts.CriticalValue != 0 && v >= opts.CriticalValue {
			str = zstr.EscRed + str + zstr.EscNoColor
		}
		line := label + "\t" + str
		if opts.BarWidth > 0 && maxVal > 0 && v > 0 {
			line += "\t" + strings.Repeat("#", int(math.Round(v/maxVal*float64(opts.BarWidth))))
		}
		fmt.Fprintln(tw, line)
	}
	if h.Rank() == 1 && opts.ShowFlows && h.axes[0].EdgeCount() != 0 {
		row("< "+nice(h.axes[0].First()), float64(h.underflow))
	}
	var lows, highs []float64
	if h.Rank() == 1 {
		lows, highs = h.LowEdges(), h.HighEdges()
	}
	for i, v := range values {
		var label string
		if h.Rank() == 1 {
			label = "[" + nice(lows[i]) + ", " + nice(highs[i]) + ")"
		} else {
			label = fmt.Sprint(h.data.Index(i))
		}
		row(label, v)
	}
	if h.Rank() == 1 && opts.ShowFlows && h.axes[0].EdgeCount() != 0 {
		row(">= "+nice(h.axes[0].Last()), float64(h.overflow))
	}
	return tw.Flush()
}
