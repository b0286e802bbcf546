package logic

import "fmt"

// Combine joins two statements with a binary connective. The inputs become
// the children of the new node by reference, not by copy. It fails with
// ErrInvalidStatement when either input is nil and with ErrNotConnective
// when op is not one of the four connectives.
func Combine(a, b Statement, op BinaryOp) (Statement, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: combine requires two statements", ErrInvalidStatement)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrNotConnective, op)
	}
	return Binary{Op: op, Left: a, Right: b}, nil
}
