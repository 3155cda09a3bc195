package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax          = NewError("syntax")
	ErrUnknownVariable = NewError("unknown variable")
	ErrUnknownUnary    = NewError("unknown unary function")
	ErrUnknownBinary   = NewError("unknown binary function")
	ErrRedefined       = NewError("already defined")
	ErrAssignConstant  = NewError("cannot assign to constant")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// located carries a source position alongside an error raised during
// parsing or building. The message is the user-facing text without any
// position formatting; positions are rendered by CompileError.
type located struct {
	err  error
	msg  string
	line int
	col  int
}

func (e *located) Error() string { return e.msg }

func (e *located) Unwrap() error { return e.err }

// syntaxError reports an unparseable token at the given position.
func syntaxError(line, col int) error {
	return &located{err: ErrSyntax, msg: "syntax", line: line, col: col}
}

// locate attaches a position to a sentinel error with a formatted message.
func locate(err *Error, msg string, tok token) error {
	return &located{err: err, msg: msg, line: tok.line, col: tok.col}
}

// Input part labels used by CompileError.
const (
	PartX     = "x(t)"
	PartY     = "y(t)"
	PartWhere = "where"
)

// StatusSuccess is the status line reported when all three inputs
// compile without error.
const StatusSuccess = "Successfully entered functions"

// CompileError describes a failure to compile one of the three inputs.
// Line and Column are 1-based positions within that input's source text.
type CompileError struct {
	Part    string
	Message string
	Line    int
	Column  int
	err     error
}

// newCompileError labels err with the input part it was raised in. A
// positioned error contributes its position; anything else reports 1:1.
func newCompileError(part string, err error) *CompileError {
	ce := &CompileError{
		Part:    part,
		Message: err.Error(),
		Line:    1,
		Column:  1,
		err:     err,
	}

	var loc *located
	if errors.As(err, &loc) {
		ce.Line, ce.Column = loc.line, loc.col
	}

	return ce
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", e.Part, e.Line, e.Column, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *CompileError) Unwrap() error { return e.err }

// Status renders the error as a one-line status message. The line number
// is included only for the where clause, whose input may span multiple
// lines; x(t) and y(t) are single-line inputs.
func (e *CompileError) Status() string {
	switch e.Part {
	case PartWhere:
		return fmt.Sprintf(
			"Error in '%s' (line %d col %d): %s",
			e.Part, e.Line, e.Column, e.Message,
		)
	default:
		return fmt.Sprintf(
			"Error in %s (col %d): %s",
			e.Part, e.Column, e.Message,
		)
	}
}

// LogValue implements slog.LogValuer.
func (e *CompileError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("part", e.Part),
		slog.Int("line", e.Line),
		slog.Int("col", e.Column),
		slog.String("error", e.Message),
	)
}
