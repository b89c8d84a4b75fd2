package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// Error is a failed operation. Its text is the complete diagnostic line.
type Error struct {
	Op  string
	Err error
	msg string
}

func newError(op, format string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
		msg: fmt.Sprintf(format, Reason(err)),
	}
}

func (e *Error) Error() string {
	return e.Op + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reason reduces err to the bare OS description, capitalised the way strerror
// prints it ("No such file or directory").
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var msg string
	var errno syscall.Errno
	var pathErr *fs.PathError

	switch {
	case errors.As(err, &errno):
		msg = errno.Error()
	case errors.As(err, &pathErr):
		msg = pathErr.Err.Error()
	default:
		msg = err.Error()
	}

	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
