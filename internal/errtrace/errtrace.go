// Package errtrace wraps errors with call-site context and renders the
// resulting chain as a readable stack trace.
package errtrace

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// traced is one link of the chain: a message plus the wrapped cause.
type traced struct {
	msg   string
	cause error
}

func (e *traced) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return e.msg + ": " + e.cause.Error()
}

func (e *traced) Unwrap() error {
	return e.cause
}

// Here wraps err with the caller's location as "function(file:line)".
// A nil err stays nil.
func Here(err error) error {
	if err == nil {
		return nil
	}

	return &traced{msg: caller(2), cause: err}
}

// Wrapf wraps err with a formatted message followed by the caller's location.
// A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...) + " " + caller(2)

	return &traced{msg: msg, cause: err}
}

func caller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown(unknown:0)"
	}

	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
	}

	return fmt.Sprintf("%s(%s:%d)", name, filepath.Base(file), line)
}

// Messages returns the chain's own messages, outermost first.
//
// Each entry is the text a link adds on top of its cause, so a
// fmt.Errorf("read config: %w", err) link contributes "read config".
// For joined errors only the first branch is followed.
func Messages(err error) []string {
	var out []string

	for err != nil {
		next := unwrap(err)
		out = append(out, ownMessage(err, next))
		err = next
	}

	return out
}

// StackTrace returns Messages innermost first.
func StackTrace(err error) []string {
	msgs := Messages(err)

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs
}

// String renders StackTrace one entry per line.
func String(err error) string {
	return strings.Join(StackTrace(err), "\n")
}

func unwrap(err error) error {
	if next := errors.Unwrap(err); next != nil {
		return next
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range multi.Unwrap() {
			if e != nil {
				return e
			}
		}
	}

	return nil
}

func ownMessage(err, cause error) string {
	if t, ok := err.(*traced); ok {
		return t.msg
	}

	full := err.Error()
	if cause == nil {
		return full
	}

	own := strings.TrimSuffix(full, cause.Error())
	if own == full {
		return full
	}

	own = strings.TrimRight(own, ": \n")
	if own == "" {
		return full
	}

	return own
}
