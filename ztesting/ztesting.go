package ztesting

import (
	"cmp"
	"errors"
	"math"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/torlangballe/zhist/zlog"
	"github.com/torlangballe/zhist/zstr"
)

func Equal[N comparable](t *testing.T, str string, a, b N) bool {
	if a != b {
		str := zstr.Spaced(str, a, "!=", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func Different[N comparable](t *testing.T, str string, a, b N) bool {
	if a == b {
		str := zstr.Spaced(str+":", a, "==", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func GreaterThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	if a < b {
		str := zstr.Spaced(str+":", a, "<", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func LessThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	if a > b {
		str := zstr.Spaced(str+":", a, ">", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

// AlmostEqual fails if a and b differ by more than tolerance.
func AlmostEqual(t *testing.T, str string, a, b, tolerance float64) bool {
	if math.Abs(a-b) > tolerance || math.IsNaN(a) != math.IsNaN(b) {
		str := zstr.Spaced(str+":", a, "!~", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

// EqualSlices compares with go-cmp, reporting the diff. A nil and empty slice are equal.
func EqualSlices[S any](t *testing.T, str string, a, b []S) bool {
	diff := gocmp.Diff(a, b, cmpopts.EquateEmpty())
	if diff != "" {
		str := zstr.Spaced(str+":", "(-got +want)\n"+diff)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

// AlmostEqualSlices is EqualSlices for floats, with a tolerance.
func AlmostEqualSlices(t *testing.T, str string, a, b []float64, tolerance float64) bool {
	diff := gocmp.Diff(a, b, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, tolerance))
	if diff != "" {
		str := zstr.Spaced(str+":", "(-got +want)\n"+diff)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func ErrorIs(t *testing.T, str string, err, target error) bool {
	if !errors.Is(err, target) {
		str := zstr.Spaced(str+":", err, "is not", target)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func NoError(t *testing.T, str string, err error) bool {
	if err != nil {
		str := zstr.Spaced(str+":", err)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}
