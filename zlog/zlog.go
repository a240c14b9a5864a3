package zlog

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/torlangballe/zhist/zstr"
)

type Priority int
type StackAdjust int

const (
	Verbose Priority = iota
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

var (
	PrintPriority           = InfoLevel // lines with lower priority are not output, but errors are still made
	UseColor                = false
	Output        io.Writer = os.Stdout
	outputHooks             = map[string]func(s string){}
	IsInTests     bool
)

func init() {
	IsInTests = strings.HasSuffix(os.Args[0], ".test")
}

func Error(err error, parts ...any) error {
	return baseLog(err, ErrorLevel, 4, parts...)
}

// Fatal performs Log with Fatal priority, and exits
func Fatal(err error, parts ...any) error {
	return baseLog(err, FatalLevel, 4, parts...)
}

// Info performs Log with InfoLevel priority
func Info(parts ...any) {
	baseLog(nil, InfoLevel, 4, parts...)
}

func Warn(parts ...any) {
	baseLog(nil, WarningLevel, 4, parts...)
}

// Debug performs Log with DebugLevel priority
func Debug(parts ...any) {
	baseLog(nil, DebugLevel, 4, parts...)
}

// Log returns a new error combined with err (if not nil), and parts. Printing done if priority >= PrintPriority
func Log(err error, priority Priority, parts ...any) error {
	return baseLog(err, priority, 4, parts...)
}

var hookingLock sync.Mutex
var hooking = false

// NewError makes an error of parts, wrapping the first part if it is an error.
// errors.Is() on the result finds the wrapped error.
func NewError(parts ...any) error {
	var err error
	if len(parts) > 0 {
		err, _ = parts[0].(error)
		if err != nil {
			parts = parts[1:]
		}
	}
	p := strings.TrimSpace(fmt.Sprintln(parts...))
	pnew, _ := zstr.EscapeColorSymbols(p)
	if pnew != p {
		p = pnew + zstr.EscNoColor
	}
	if err != nil {
		if p == "" {
			return errors.WithStack(err)
		}
		return errors.Wrap(err, p)
	}
	return errors.New(p)
}

func baseLog(err error, priority Priority, pos int, parts ...any) error {
	if len(parts) != 0 {
		n, got := parts[0].(StackAdjust)
		if got {
			parts = parts[1:]
			pos += int(n)
		}
	}
	if err != nil {
		parts = append([]any{err}, parts...)
	}
	err = NewError(parts...)
	if priority < PrintPriority {
		return err
	}
	col := ""
	endCol := ""
	if UseColor {
		if priority >= ErrorLevel {
			col = zstr.EscMagenta
			endCol = zstr.EscNoColor
		} else if priority >= WarningLevel {
			col = zstr.EscYellow
			endCol = zstr.EscNoColor
		}
	}
	finfo := time.Now().Local().Format("15:04:05/02 ")
	if UseColor {
		finfo = zstr.EscCyan + finfo + zstr.EscNoColor
	}
	if priority != InfoLevel {
		finfo += GetCallingFunctionString(pos) + ": "
	}
	if priority == FatalLevel {
		finfo += "\nFatal:" + GetCallingStackString() + "\n"
	}
	fmt.Fprintln(Output, finfo+col+err.Error()+endCol)
	str := finfo + err.Error() + "\n"

	hookingLock.Lock()
	if !hooking {
		hooking = true
		for _, f := range outputHooks {
			f(str)
		}
		hooking = false
	}
	hookingLock.Unlock()
	if priority == FatalLevel {
		os.Exit(-1)
	}
	return err
}

func GetCallingFunctionInfo(pos int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(pos)
	if ok {
		function = runtime.FuncForPC(pc).Name()
	}
	return
}

func GetCallingStackString() string {
	var parts []string
	for i := 3; ; i++ {
		s := GetCallingFunctionString(i)
		if s == "" {
			break
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

func GetCallingFunctionString(pos int) string {
	function, file, line := GetCallingFunctionInfo(pos)
	if function == "" {
		return ""
	}
	_, function = path.Split(function)
	_, file = path.Split(file)
	return fmt.Sprintf("%s:%d %s()", file, line, function)
}

// Assert exits with a stack dump if success is false. Only use it for invariants the code itself maintains.
func Assert(success bool, parts ...any) {
	if !success {
		parts = append([]any{StackAdjust(1)}, parts...)
		Fatal(errors.New("assert failed"), parts...)
	}
}

func OnError(err error, parts ...any) bool {
	if err != nil {
		parts = append([]any{StackAdjust(1)}, parts...)
		Error(err, parts...)
		return true
	}
	return false
}

// AddHook adds a function that gets every output line. Lines below PrintPriority are not hooked.
func AddHook(id string, call func(s string)) {
	hookingLock.Lock()
	outputHooks[id] = call
	hookingLock.Unlock()
}

func RemoveHook(id string) {
	hookingLock.Lock()
	delete(outputHooks, id)
	hookingLock.Unlock()
}

func Wrap(err error, parts ...any) error {
	p := strings.TrimSpace(fmt.Sprintln(parts...))
	return errors.Wrap(err, p)
}
