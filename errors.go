package szl

import "fmt"

// Code identifies the taxonomy of an interpreter error.
type Code int

const (
	// BadValue: a value cannot be converted to the requested representation.
	BadValue Code = iota + 1
	// BadName: a variable, command, or member name was not found.
	BadName
	// BadIndex: a list/dict index is out of range or has the wrong sign.
	BadIndex
	// Usage: a command was called with the wrong arity or bad options.
	Usage
	// ReadOnly: an attempt was made to mutate a read-only Value.
	ReadOnly
	// UnbalancedBrace: the tokeniser or splitter found an unterminated {.
	UnbalancedBrace
	// UnbalancedBracket: the tokeniser or splitter found an unterminated [.
	UnbalancedBracket
	// NestingLimit: the evaluator's recursion depth limit was exceeded.
	NestingLimit
	// Unsupported: a stream operation is not implemented by the backend.
	Unsupported
	// Io wraps an underlying I/O failure.
	Io
	// Os wraps an underlying OS-level failure.
	Os
)

func (c Code) String() string {
	switch c {
	case BadValue:
		return "BadValue"
	case BadName:
		return "BadName"
	case BadIndex:
		return "BadIndex"
	case Usage:
		return "Usage"
	case ReadOnly:
		return "ReadOnly"
	case UnbalancedBrace:
		return "UnbalancedBrace"
	case UnbalancedBracket:
		return "UnbalancedBracket"
	case NestingLimit:
		return "NestingLimit"
	case Unsupported:
		return "Unsupported"
	case Io:
		return "Io"
	case Os:
		return "Os"
	default:
		return "Unknown"
	}
}

// Error is the error type returned throughout the interpreter. It
// carries a taxonomy [Code] alongside the human-readable message that
// is written into interp.last when a command fails.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrapped
}

// Is reports whether target is a message-less *Error with this error's
// Code, so callers can use errors.Is(err, szl.ErrBadName) style checks
// against the sentinels below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Code == e.Code && other.Message == ""
}

// NewError builds an *Error with the given code and message. Use this
// (or [Errorf]) rather than constructing &Error{} literals so that
// future fields stay internally consistent.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that wraps an underlying Go error, preserving
// it for errors.Unwrap/errors.As while presenting the taxonomy Code
// the interpreter's callers expect.
func Wrap(code Code, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: err.Error(), wrapped: err}
}

// sentinel returns a zero-message *Error usable as an errors.Is target
// for a given code, e.g. errors.Is(err, szl.ErrBadName).
func sentinel(code Code) *Error { return &Error{Code: code} }

var (
	// ErrBadName is an errors.Is target matching any BadName error.
	ErrBadName = sentinel(BadName)
	// ErrReadOnly is an errors.Is target matching any ReadOnly error.
	ErrReadOnly = sentinel(ReadOnly)
	// ErrUnbalancedBrace is an errors.Is target matching any UnbalancedBrace error.
	ErrUnbalancedBrace = sentinel(UnbalancedBrace)
	// ErrUnbalancedBracket is an errors.Is target matching any UnbalancedBracket error.
	ErrUnbalancedBracket = sentinel(UnbalancedBracket)
	// ErrNestingLimit is an errors.Is target matching any NestingLimit error.
	ErrNestingLimit = sentinel(NestingLimit)
	// ErrUnsupported is an errors.Is target matching any Unsupported error.
	ErrUnsupported = sentinel(Unsupported)
)
