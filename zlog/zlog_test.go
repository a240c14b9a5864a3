package zlog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var errTest = errors.New("test sentinel")

func TestNewError(t *testing.T) {
	err := NewError(errTest, "context", 42)
	if !errors.Is(err, errTest) {
		t.Error("wrapped sentinel not found:", err)
	}
	if err.Error() != "context 42: test sentinel" {
		t.Error("unexpected message:", err.Error())
	}
	if NewError("plain").Error() != "plain" {
		t.Error("plain error message wrong")
	}
}

func TestPrintPriority(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	var hooked []string
	AddHook("test", func(s string) {
		hooked = append(hooked, s)
	})
	defer RemoveHook("test")

	Debug("hidden")
	if buf.Len() != 0 || len(hooked) != 0 {
		t.Error("debug line printed below PrintPriority:", buf.String())
	}
	Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warning not printed:", buf.String())
	}
	if len(hooked) != 1 || !strings.Contains(hooked[0], "zlog_test.go") {
		t.Error("hook didn't get calling function:", hooked)
	}
}
