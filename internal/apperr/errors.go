package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels for use with errors.Is()
var (
	ErrUsage    = errors.New("usage error")
	ErrFileRead = errors.New("file read error")
	ErrParse    = errors.New("parse error")
	ErrSign     = errors.New("sign error")
)

// Kind names the pipeline stage an Error came from.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindFileRead
	KindParse
	KindSign
)

func (k Kind) sentinel() error {
	switch k {
	case KindUsage:
		return ErrUsage
	case KindFileRead:
		return ErrFileRead
	case KindParse:
		return ErrParse
	case KindSign:
		return ErrSign
	default:
		return nil
	}
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error tags a failure with the pipeline stage it came from. The cause is kept
// so its diagnostic text survives to the top-level handler.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return e.Kind.String() + ": " + e.Msg
	case e.Msg == "":
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func Usage(err error, format string, a ...any) *Error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, a...), Err: err}
}

func FileRead(err error, format string, a ...any) *Error {
	return &Error{Kind: KindFileRead, Msg: fmt.Sprintf(format, a...), Err: err}
}

func Parse(err error, format string, a ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, a...), Err: err}
}

func Sign(err error, format string, a ...any) *Error {
	return &Error{Kind: KindSign, Msg: fmt.Sprintf(format, a...), Err: err}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
