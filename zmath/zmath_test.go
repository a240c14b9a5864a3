package zmath

import (
	"fmt"
	"testing"

	"github.com/torlangballe/zhist/ztesting"
)

func TestAccumulator(t *testing.T) {
	fmt.Println("TestAccumulator")
	var a Accumulator
	a.Add(2)
	a.AddWeighted(5, 2)
	a.Add(-1)
	ztesting.Equal(t, "count", a.Count, 3)
	ztesting.Equal(t, "sum of weight", a.SumOfWeight, 4.0)
	ztesting.Equal(t, "average", a.Average(), (2+10-1)/4.0)
	ztesting.Equal(t, "range", a.Range(), MakeRange(-1.0, 5.0))
	a.Reset()
	ztesting.Equal(t, "reset range valid", a.Range().Valid, false)
}

func TestRange(t *testing.T) {
	var r RangeF64
	r.Add(3)
	r.Add(-2)
	ztesting.Equal(t, "length", r.Length(), 5.0)
	ztesting.Equal(t, "contains min", r.Contains(-2), true)
	ztesting.Equal(t, "contains max", r.Contains(3), false)
	ztesting.Equal(t, "nice", r.NiceString(2), "-2 - 3")
}

func TestIsReal(t *testing.T) {
	ztesting.Equal(t, "float64", IsReal[float64](), true)
	ztesting.Equal(t, "float32", IsReal[float32](), true)
	ztesting.Equal(t, "int", IsReal[int](), false)
	ztesting.Equal(t, "uint8", IsReal[uint8](), false)
}
