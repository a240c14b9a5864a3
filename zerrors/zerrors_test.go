package zerrors

import (
	"errors"
	"testing"

	"github.com/torlangballe/zhist/zdict"
)

var errSentinel = errors.New("sentinel")

func TestContextError(t *testing.T) {
	ce := MakeContextError(zdict.Dict{"adapter": "otel"}, "convert failed", errSentinel)
	if ce.Error() != "convert failed: sentinel" {
		t.Error("message wrong:", ce.Error())
	}
	if !errors.Is(ce, errSentinel) {
		t.Error("sentinel not unwrapped")
	}
	outer := MakeContextError(zdict.Dict{"index": 2}, "converter", ce)
	if outer.SubContextError == nil || outer.SubContextError.KeyValues["adapter"] != "otel" {
		t.Error("sub context not kept:", outer.String())
	}
	if !errors.Is(outer, errSentinel) {
		t.Error("sentinel not unwrapped through sub context")
	}
	if outer.Error() != "converter: convert failed: sentinel" {
		t.Error("outer message wrong:", outer.Error())
	}
}
