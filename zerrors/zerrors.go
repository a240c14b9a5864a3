package zerrors

import (
	"errors"

	"github.com/torlangballe/zhist/zdict"
	"github.com/torlangballe/zhist/zstr"
)

// ContextError is an error with a title, key/values describing where it happened and an optional wrapped error.
type ContextError struct {
	Title           string
	SubContextError *ContextError
	WrappedError    error `json:"-"`
	KeyValues       zdict.Dict
}

func (e ContextError) Error() string {
	str := e.Title
	if e.SubContextError != nil {
		return zstr.Concat(": ", str, e.SubContextError.Error())
	}
	if e.WrappedError != nil {
		str += ": " + e.WrappedError.Error()
	}
	return str
}

func (e ContextError) String() string {
	str := "{ " + e.Title + " [" + e.KeyValues.Join("=", " ") + "] "
	if e.SubContextError != nil {
		str += "{ " + e.SubContextError.String() + " } "
	}
	return str + "}"
}

func (e ContextError) Unwrap() error {
	if e.SubContextError != nil {
		return *e.SubContextError
	}
	return e.WrappedError
}

// MakeContextError makes a ContextError with dict as key/values, and non-error parts spaced as title.
// An error part is wrapped, if it is a ContextError it becomes the SubContextError.
func MakeContextError(dict zdict.Dict, parts ...any) ContextError {
	var ie ContextError
	var nparts []any
	ie.KeyValues = dict
	for _, p := range parts {
		err, got := p.(error)
		if got {
			ce, gotCE := ContextErrorFromError(err)
			if gotCE {
				ie.SubContextError = &ce
				continue
			}
			ie.WrappedError = err
			continue
		}
		nparts = append(nparts, p)
	}
	ie.Title = zstr.Spaced(nparts...)
	return ie
}

func ContextErrorFromError(err error) (ContextError, bool) {
	var ce ContextError
	if errors.As(err, &ce) {
		return ce, true
	}
	return ContextError{}, false
}
