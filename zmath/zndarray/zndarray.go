// Package zndarray is a dense, row-major N-dimensional array of numbers.
package zndarray

import (
	"errors"
	"slices"

	"github.com/torlangballe/zhist/zint"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
)

var ErrShape = errors.New("shape error")

// Array is values laid out row-major in Shape. A zero-dimension in Shape gives no values.
type Array[N zmath.Number] struct {
	shape  []int
	values []N
}

// New allocates a zero-filled array of shape.
func New[N zmath.Number](shape ...int) Array[N] {
	for _, s := range shape {
		zlog.Assert(s >= 0, "negative dimension", shape)
	}
	return Array[N]{shape: slices.Clone(shape), values: make([]N, zint.Product(shape...))}
}

// FromSlice makes a 1-dimensional array of a copy of values.
func FromSlice[N zmath.Number](values []N) Array[N] {
	return Array[N]{shape: []int{len(values)}, values: slices.Clone(values)}
}

// FromRows makes a 2-dimensional array, all rows must be the same length.
func FromRows[N zmath.Number](rows [][]N) (Array[N], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	a := New[N](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Array[N]{}, zlog.NewError(ErrShape, "row", i, "has", len(row), "values, not", cols)
		}
		copy(a.values[i*cols:], row)
	}
	return a, nil
}

// Reshaped makes an array of shape from a copy of values, which must have the product of shape values.
func Reshaped[N zmath.Number](values []N, shape ...int) (Array[N], error) {
	if zint.Product(shape...) != len(values) {
		return Array[N]{}, zlog.NewError(ErrShape, "can't shape", len(values), "values as", shape)
	}
	return Array[N]{shape: slices.Clone(shape), values: slices.Clone(values)}, nil
}

func (a Array[N]) Shape() []int {
	return slices.Clone(a.shape)
}

func (a Array[N]) Rank() int {
	return len(a.shape)
}

// Size is the number of values.
func (a Array[N]) Size() int {
	return len(a.values)
}

// Values returns the underlying values, row-major. Changing them changes the array.
func (a Array[N]) Values() []N {
	return a.values
}

func (a Array[N]) HasShape(shape []int) bool {
	return slices.Equal(a.shape, shape)
}

// Clone returns an array that shares no storage with a.
func (a Array[N]) Clone() Array[N] {
	return Array[N]{shape: slices.Clone(a.shape), values: slices.Clone(a.values)}
}

// Offset returns the position in Values() of index, or an error if index doesn't fit the shape.
func (a Array[N]) Offset(index ...int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, zlog.NewError(ErrShape, "index", index, "for rank", len(a.shape))
	}
	offset := 0
	for i, n := range index {
		if n < 0 || n >= a.shape[i] {
			return 0, zlog.NewError(ErrShape, "index", index, "outside shape", a.shape)
		}
		offset = offset*a.shape[i] + n
	}
	return offset, nil
}

// Index is the reverse of Offset.
func (a Array[N]) Index(offset int) []int {
	index := make([]int, len(a.shape))
	for i := len(a.shape) - 1; i >= 0; i-- {
		index[i] = offset % a.shape[i]
		offset /= a.shape[i]
	}
	return index
}

func (a Array[N]) Get(index ...int) (N, error) {
	o, err := a.Offset(index...)
	if err != nil {
		return 0, err
	}
	return a.values[o], nil
}

func (a Array[N]) Put(value N, index ...int) error {
	o, err := a.Offset(index...)
	if err != nil {
		return err
	}
	a.values[o] = value
	return nil
}

// At is Get that panics on a bad index.
func (a Array[N]) At(index ...int) N {
	n, err := a.Get(index...)
	if err != nil {
		panic(err)
	}
	return n
}

// Set is Put that panics on a bad index.
func (a Array[N]) Set(value N, index ...int) {
	err := a.Put(value, index...)
	if err != nil {
		panic(err)
	}
}

// Fill sets all values to n.
func (a Array[N]) Fill(n N) {
	for i := range a.values {
		a.values[i] = n
	}
}

// Span is the half-open range [Start, Stop) along one dimension.
type Span struct {
	Start int
	Stop  int
}

// Whole returns a Span of all of dimension dim.
func (a Array[N]) Whole(dim int) Span {
	return Span{Start: 0, Stop: a.shape[dim]}
}

// Sliced copies the values within spans, one per dimension, into a new array.
func (a Array[N]) Sliced(spans ...Span) (Array[N], error) {
	if len(spans) != len(a.shape) {
		return Array[N]{}, zlog.NewError(ErrShape, "need", len(a.shape), "spans, got", len(spans))
	}
	shape := make([]int, len(spans))
	for i, s := range spans {
		if s.Start < 0 || s.Stop < s.Start || s.Stop > a.shape[i] {
			return Array[N]{}, zlog.NewError(ErrShape, "span", s, "outside dimension", i, "of", a.shape[i])
		}
		shape[i] = s.Stop - s.Start
	}
	out := New[N](shape...)
	if out.Size() == 0 {
		return out, nil
	}
	src := make([]int, len(shape))
	for o := range out.values {
		for i, n := range out.Index(o) {
			src[i] = n + spans[i].Start
		}
		so, _ := a.Offset(src...)
		out.values[o] = a.values[so]
	}
	return out, nil
}
