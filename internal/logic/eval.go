package logic

import "fmt"

// Assignment maps variable names to truth values. Variables absent from
// the assignment evaluate to false, matching the enumeration convention
// where every variable starts out false.
type Assignment map[string]bool

// Eval evaluates a statement under the given assignment. The only error
// case is a nil or foreign Statement implementation.
func Eval(s Statement, assignment Assignment) (bool, error) {
	switch n := s.(type) {
	case Const:
		return n.Value, nil
	case Variable:
		return assignment[n.Name], nil
	case Unary:
		v, err := Eval(n.Operand, assignment)
		if err != nil {
			return false, err
		}
		return n.Op.Apply(v), nil
	case Binary:
		l, err := Eval(n.Left, assignment)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.Right, assignment)
		if err != nil {
			return false, err
		}
		return n.Op.Apply(l, r), nil
	case nil:
		return false, ErrInvalidStatement
	default:
		return false, fmt.Errorf("%w: unknown node %T", ErrInvalidStatement, s)
	}
}

// EvalTokens reduces a token sequence to a single fully-reduced Statement.
// A *SyntaxError is returned when the sequence is malformed.
func EvalTokens(toks []Token) (Statement, error) {
	return NewParser(toks).Parse()
}

// EvalTokensWith reduces a token sequence and evaluates the result under
// the given assignment.
func EvalTokensWith(toks []Token, assignment Assignment) (bool, error) {
	stmt, err := NewParser(toks).Parse()
	if err != nil {
		return false, err
	}
	return Eval(stmt, assignment)
}
