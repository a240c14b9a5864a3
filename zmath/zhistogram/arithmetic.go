package zhistogram

import (
	"math"
	"slices"

	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zmath"
)

type operandKind int

const (
	histOperand operandKind = iota
	scalarOperand
	arrayOperand
)

// Operand is the right hand side of arithmetic on a histogram: another histogram, a scalar or a flat array of values.
type Operand[N zmath.Number] struct {
	kind   operandKind
	hist   *Histogram[N]
	scalar N
	values []N
}

// Hist uses the values of h element by element. h's edges are not compared.
func Hist[N zmath.Number](h *Histogram[N]) Operand[N] {
	return Operand[N]{kind: histOperand, hist: h}
}

func Scalar[N zmath.Number](s N) Operand[N] {
	return Operand[N]{kind: scalarOperand, scalar: s}
}

// Array uses values in row-major order, there must be one per bin.
func Array[N zmath.Number](values []N) Operand[N] {
	return Operand[N]{kind: arrayOperand, values: values}
}

// at returns the operand's value for bin i, the size has been checked.
func (o Operand[N]) at(i int) N {
	switch o.kind {
	case histOperand:
		return o.hist.data.Values()[i]
	case arrayOperand:
		return o.values[i]
	}
	return o.scalar
}

func (o Operand[N]) size() int {
	switch o.kind {
	case histOperand:
		return o.hist.data.Size()
	case arrayOperand:
		return len(o.values)
	}
	return -1
}

type binaryOp[N zmath.Number] func(a, b N) N

func (h *Histogram[N]) checkSize(o Operand[N], name string) error {
	if o.kind == histOperand && o.hist == nil {
		return zlog.NewError(ErrShapeMismatch, name, "with nil histogram")
	}
	size := o.size()
	if size != -1 && size != h.data.Size() {
		return zlog.NewError(ErrShapeMismatch, name, "of", size, "elements on histogram of", h.data.Size())
	}
	return nil
}

func (h *Histogram[N]) apply(o Operand[N], name string, op binaryOp[N]) error {
	err := h.checkSize(o, name)
	if err != nil {
		return err
	}
	values := h.data.Values()
	for i := range values {
		values[i] = op(values[i], o.at(i))
	}
	return nil
}

func (h *Histogram[N]) checkIntDivisor(o Operand[N], name string) error {
	err := h.checkSize(o, name)
	if err != nil || zmath.IsReal[N]() {
		return err
	}
	n := o.size()
	if n == -1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if o.at(i) == 0 {
			return zlog.NewError(ErrDivideByZero, name, "divisor element", i)
		}
	}
	return nil
}

// Add adds o to every bin. Underflow and overflow are not changed by arithmetic.
func (h *Histogram[N]) Add(o Operand[N]) error {
	return h.apply(o, "add", func(a, b N) N { return a + b })
}

func (h *Histogram[N]) Subtract(o Operand[N]) error {
	return h.apply(o, "subtract", func(a, b N) N { return a - b })
}

func (h *Histogram[N]) Multiply(o Operand[N]) error {
	return h.apply(o, "multiply", func(a, b N) N { return a * b })
}

// Divide divides each bin by o. Integer histograms truncate, and return ErrDivideByZero
// before changing anything if o has a zero; float histograms get Inf or NaN.
func (h *Histogram[N]) Divide(o Operand[N]) error {
	err := h.checkIntDivisor(o, "divide")
	if err != nil {
		return err
	}
	return h.apply(o, "divide", func(a, b N) N { return a / b })
}

// FloorDivide is Divide rounding towards negative infinity.
func (h *Histogram[N]) FloorDivide(o Operand[N]) error {
	err := h.checkIntDivisor(o, "floor divide")
	if err != nil {
		return err
	}
	return h.apply(o, "floor divide", floorDiv[N])
}

func floorDiv[N zmath.Number](a, b N) N {
	if zmath.IsReal[N]() {
		return N(math.Floor(float64(a) / float64(b)))
	}
	q := a / b
	if q*b != a && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (h *Histogram[N]) operated(o Operand[N], op func(*Histogram[N], Operand[N]) error) (*Histogram[N], error) {
	n := h.Copy()
	if o.kind == arrayOperand {
		o.values = slices.Clone(o.values)
	}
	err := op(n, o)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Added returns a copy of h with o added, neither h nor o are changed.
func (h *Histogram[N]) Added(o Operand[N]) (*Histogram[N], error) {
	return h.operated(o, (*Histogram[N]).Add)
}

func (h *Histogram[N]) Subtracted(o Operand[N]) (*Histogram[N], error) {
	return h.operated(o, (*Histogram[N]).Subtract)
}

func (h *Histogram[N]) Multiplied(o Operand[N]) (*Histogram[N], error) {
	return h.operated(o, (*Histogram[N]).Multiply)
}

func (h *Histogram[N]) Divided(o Operand[N]) (*Histogram[N], error) {
	return h.operated(o, (*Histogram[N]).Divide)
}

func (h *Histogram[N]) FloorDivided(o Operand[N]) (*Histogram[N], error) {
	return h.operated(o, (*Histogram[N]).FloorDivide)
}

// ScalarAdded returns s + h as a new histogram. Adding a scalar can't fail.
func ScalarAdded[N zmath.Number](s N, h *Histogram[N]) *Histogram[N] {
	n, err := h.Added(Scalar(s))
	zlog.Assert(err == nil, err)
	return n
}
