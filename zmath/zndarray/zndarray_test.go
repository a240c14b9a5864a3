package zndarray

import (
	"fmt"
	"testing"

	"github.com/torlangballe/zhist/ztesting"
)

func TestNew(t *testing.T) {
	fmt.Println("TestNew")
	a := New[float64](2, 3)
	ztesting.Equal(t, "size", a.Size(), 6)
	ztesting.Equal(t, "rank", a.Rank(), 2)
	ztesting.EqualSlices(t, "shape", a.Shape(), []int{2, 3})
	ztesting.Equal(t, "empty dimension size", New[int](0, 4).Size(), 0)
	ztesting.Equal(t, "scalar-less size", New[int](5).Size(), 5)
}

func TestOffsetIndex(t *testing.T) {
	a := New[int](2, 3, 4)
	o, err := a.Offset(1, 2, 3)
	ztesting.NoError(t, "offset", err)
	ztesting.Equal(t, "offset value", o, 23)
	ztesting.EqualSlices(t, "index", a.Index(23), []int{1, 2, 3})
	_, err = a.Offset(1, 3, 0)
	ztesting.ErrorIs(t, "outside", err, ErrShape)
	_, err = a.Offset(1, 2)
	ztesting.ErrorIs(t, "rank", err, ErrShape)

	a.Set(7, 1, 0, 2)
	ztesting.Equal(t, "at", a.At(1, 0, 2), 7)
	ztesting.Equal(t, "raw", a.Values()[14], 7)
}

func TestFromRows(t *testing.T) {
	a, err := FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	ztesting.NoError(t, "rows", err)
	ztesting.EqualSlices(t, "shape", a.Shape(), []int{3, 2})
	ztesting.Equal(t, "value", a.At(2, 0), 5)
	_, err = FromRows([][]int{{1, 2}, {3}})
	ztesting.ErrorIs(t, "ragged", err, ErrShape)

	_, err = Reshaped([]int{1, 2, 3}, 2, 2)
	ztesting.ErrorIs(t, "reshape size", err, ErrShape)
}

func TestCloneNotAliased(t *testing.T) {
	src := []float64{1, 2, 3}
	a := FromSlice(src)
	src[0] = 9
	ztesting.Equal(t, "from slice copies", a.At(0), 1.0)
	b := a.Clone()
	b.Set(5, 1)
	ztesting.Equal(t, "clone copies", a.At(1), 2.0)
}

func TestSliced(t *testing.T) {
	a, _ := Reshaped([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, 3, 4)
	s, err := a.Sliced(Span{1, 3}, Span{1, 3})
	ztesting.NoError(t, "sliced", err)
	ztesting.EqualSlices(t, "sliced shape", s.Shape(), []int{2, 2})
	ztesting.EqualSlices(t, "sliced values", s.Values(), []int{5, 6, 9, 10})
	s.Set(100, 0, 0)
	ztesting.Equal(t, "slice is a copy", a.At(1, 1), 5)

	_, err = a.Sliced(Span{0, 4}, a.Whole(1))
	ztesting.ErrorIs(t, "span past end", err, ErrShape)
	e, err := a.Sliced(Span{2, 2}, a.Whole(1))
	ztesting.NoError(t, "empty span", err)
	ztesting.Equal(t, "empty span size", e.Size(), 0)
}
