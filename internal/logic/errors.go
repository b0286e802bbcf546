package logic

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel for malformed expressions. Every *SyntaxError
// matches it under errors.Is.
var ErrSyntax = errors.New("malformed statement")

var (
	// ErrInvalidStatement indicates a nil or unrecognized statement argument.
	ErrInvalidStatement = errors.New("invalid statement")
	// ErrNotConnective indicates an operator that is not a binary connective.
	ErrNotConnective = errors.New("not a binary connective")
	// ErrNegativeBit indicates a negative input to GetBit.
	ErrNegativeBit = errors.New("bit value and position must be non-negative")
	// ErrRowRange indicates an out-of-bounds truth table row interval.
	ErrRowRange = errors.New("row range out of bounds")
)

// SyntaxError reports a malformed expression together with the byte
// position at which it was detected.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
