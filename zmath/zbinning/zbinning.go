// Package zbinning holds the edges of one histogram axis, and finds which bin a value belongs to.
//
// A bin i is the half-open interval [edges[i], edges[i+1]).
// Edges must be ascending, equal neighbors are allowed and make an empty bin nothing can be filled into.
package zbinning

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/torlangballe/zhist/zfloat"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
	"github.com/torlangballe/zhist/zstr"
	"github.com/torlangballe/zhist/zwords"
)

// ErrBin is wrapped by all errors caused by invalid edges or shapes not matching edges.
var ErrBin = errors.New("bin error")

// Scheme is the immutable, validated edges of one axis.
// The zero Scheme has no edges and no bins.
type Scheme struct {
	edges []float64
}

// Place says where a value ended up when located in a Scheme.
type Place int

const (
	Inside Place = iota
	Below
	Above
	Nowhere // NaN, or a Scheme without bins
)

// New validates edges and makes a Scheme of a copy of them.
func New(edges []float64) (Scheme, error) {
	if len(edges) == 1 {
		return Scheme{}, zlog.NewError(ErrBin, "must provide more than one edge for a single bin")
	}
	i := zfloat.Slice(edges).IsAscending()
	if i != -1 {
		return Scheme{}, zlog.NewError(ErrBin, "edges must be numerically ascending, index", i, "is", edges[i], "after", edges[max(i-1, 0)])
	}
	return Scheme{edges: slices.Clone(edges)}, nil
}

// MustNew is New for edges known to be valid, it panics on error.
func MustNew(edges []float64) Scheme {
	s, err := New(edges)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Scheme) BinCount() int {
	return max(len(s.edges)-1, 0)
}

// EdgeCount is the number of edges, one more than BinCount unless empty.
func (s Scheme) EdgeCount() int {
	return len(s.edges)
}

func (s Scheme) Edge(i int) float64 {
	return s.edges[i]
}

func (s Scheme) First() float64 {
	return s.edges[0]
}

func (s Scheme) Last() float64 {
	return s.edges[len(s.edges)-1]
}

// Edges returns a copy of all the edges.
func (s Scheme) Edges() []float64 {
	return slices.Clone(s.edges)
}

// LowEdges returns the low edge of each bin.
func (s Scheme) LowEdges() []float64 {
	if len(s.edges) == 0 {
		return []float64{}
	}
	return slices.Clone(s.edges[:len(s.edges)-1])
}

// HighEdges returns the high edge of each bin.
func (s Scheme) HighEdges() []float64 {
	if len(s.edges) == 0 {
		return []float64{}
	}
	return slices.Clone(s.edges[1:])
}

func (s Scheme) Centers() []float64 {
	centers := make([]float64, s.BinCount())
	for i := range centers {
		low := s.edges[i]
		centers[i] = low + (s.edges[i+1]-low)/2
	}
	return centers
}

func (s Scheme) Widths() []float64 {
	widths := make([]float64, s.BinCount())
	for i := range widths {
		widths[i] = s.edges[i+1] - s.edges[i]
	}
	return widths
}

// Range is first to last edge, invalid for a Scheme without edges.
func (s Scheme) Range() zmath.RangeF64 {
	if len(s.edges) == 0 {
		return zmath.RangeF64{}
	}
	return zmath.MakeRange(s.First(), s.Last())
}

func (s Scheme) Equal(o Scheme) bool {
	return slices.Equal(s.edges, o.edges)
}

// Locate finds the bin i where edges[i] <= value < edges[i+1] using binary search.
// Below the first edge returns -1, Below; at or above the last edge BinCount(), Above.
func (s Scheme) Locate(value float64) (bin int, place Place) {
	n := len(s.edges)
	if n == 0 || value != value {
		return -1, Nowhere
	}
	if value < s.edges[0] {
		return -1, Below
	}
	if value >= s.edges[n-1] {
		return n - 1, Above
	}
	// first edge above value, the bin is the one before it
	i := sort.Search(n, func(i int) bool {
		return s.edges[i] > value
	})
	return i - 1, Inside
}

// Digitize is Locate as a single index: -1 below, BinCount() at or above the last edge.
// NaN gives -1.
func (s Scheme) Digitize(value float64) int {
	bin, _ := s.Locate(value)
	return bin
}

// Sub returns the Scheme for bins start up to stop, edges[start:stop+1].
func (s Scheme) Sub(start, stop int) (Scheme, error) {
	if start < 0 || stop < start || stop > s.BinCount() {
		return Scheme{}, zlog.NewError(ErrBin, "bin span", start, stop, "outside", s.BinCount(), "bins")
	}
	if start == stop {
		return Scheme{}, nil
	}
	return Scheme{edges: slices.Clone(s.edges[start : stop+1])}, nil
}

// Merged returns a Scheme of every count'th edge of s, and the last edge.
func (s Scheme) Merged(count int) (Scheme, error) {
	if count < 1 {
		return Scheme{}, zlog.NewError(ErrBin, "merge count must be 1 or more:", count)
	}
	if len(s.edges) == 0 {
		return Scheme{}, nil
	}
	var edges []float64
	for i := 0; i < s.BinCount(); i += count {
		edges = append(edges, s.edges[i])
	}
	edges = append(edges, s.Last())
	return Scheme{edges: edges}, nil
}

func (s Scheme) String() string {
	return "[" + zstr.JoinFunc(s.edges, " ", func(f float64) string {
		return zwords.NiceFloat(f, 6)
	}) + "]"
}

func (s Scheme) GoString() string {
	return fmt.Sprintf("zbinning.MustNew(%#v)", s.edges)
}
