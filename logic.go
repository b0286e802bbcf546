// Package proplogic parses, evaluates, simplifies, and proves symbolic
// propositional-logic expressions. It is a thin facade over
// internal/logic; see that package for the expression grammar.
package proplogic

import (
	"fmt"

	"github.com/gnolang/proplogic/internal/logic"
)

// Core types re-exported for callers of the facade.
type (
	Statement      = logic.Statement
	Token          = logic.Token
	TokenType      = logic.TokenType
	Assignment     = logic.Assignment
	Row            = logic.Row
	TruthTable     = logic.TruthTable
	BinaryOp       = logic.BinaryOp
	Classification = logic.Classification
	SyntaxError    = logic.SyntaxError
)

// Binary connectives, usable with Combine.
const (
	And     = logic.OpAnd
	Or      = logic.OpOr
	Implies = logic.OpImplies
	Iff     = logic.OpIff
)

// Truth table classifications.
const (
	Tautology     = logic.Tautology
	Contradiction = logic.Contradiction
	Contingency   = logic.Contingency
)

// Error values; see the corresponding internal/logic errors.
var (
	ErrSyntax           = logic.ErrSyntax
	ErrInvalidStatement = logic.ErrInvalidStatement
	ErrNotConnective    = logic.ErrNotConnective
	ErrNegativeBit      = logic.ErrNegativeBit
	ErrRowRange         = logic.ErrRowRange
)

// Tokenize scans a source expression into its token sequence.
func Tokenize(input string) ([]Token, error) {
	return logic.Tokenize(input)
}

// Parse builds a Statement from a source expression.
func Parse(input string) (Statement, error) {
	return logic.Parse(input)
}

// MustParse is like Parse but panics on malformed input. It is intended
// for statically known expressions and tests.
func MustParse(input string) Statement {
	stmt, err := logic.Parse(input)
	if err != nil {
		panic(err)
	}
	return stmt
}

// Eval parses a source expression and evaluates it under the given
// assignment. Variables absent from the assignment are false.
func Eval(input string, assignment Assignment) (bool, error) {
	stmt, err := logic.Parse(input)
	if err != nil {
		return false, err
	}
	return logic.Eval(stmt, assignment)
}

// EvalStatement evaluates an already-parsed statement under an assignment.
func EvalStatement(stmt Statement, assignment Assignment) (bool, error) {
	return logic.Eval(stmt, assignment)
}

// Variables returns the statement's distinct variable names in
// first-occurrence order.
func Variables(stmt Statement) []string {
	return logic.Variables(stmt)
}

// NewTruthTable enumerates the statement's full truth table: 2^n rows for
// n variables.
func NewTruthTable(stmt Statement) (*TruthTable, error) {
	return logic.NewTruthTable(stmt)
}

// NewTruthTableRange enumerates only the rows in [start, end).
func NewTruthTableRange(stmt Statement, start, end int) (*TruthTable, error) {
	return logic.NewTruthTableRange(stmt, start, end)
}

// Prove reports whether the statement is a tautology by exhaustive truth
// table enumeration.
func Prove(stmt Statement) (bool, error) {
	return logic.Prove(stmt)
}

// Simplify rewrites the statement into an equivalent, structurally smaller
// form under the given truth table context.
func Simplify(stmt Statement, table *TruthTable) (Statement, error) {
	return logic.Simplify(stmt, table)
}

// Combine joins two statements with a binary connective. Each input may be
// a Statement or a source string, which is parsed first.
func Combine(a, b any, op BinaryOp) (Statement, error) {
	left, err := toStatement(a)
	if err != nil {
		return nil, err
	}
	right, err := toStatement(b)
	if err != nil {
		return nil, err
	}
	return logic.Combine(left, right, op)
}

func toStatement(v any) (Statement, error) {
	switch s := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: combine accepts only strings and statements, got nil",
			logic.ErrInvalidStatement)
	case Statement:
		return s, nil
	case string:
		return logic.Parse(s)
	default:
		return nil, fmt.Errorf("%w: combine accepts only strings and statements, got %T",
			logic.ErrInvalidStatement, v)
	}
}

// GetBit reports whether bit c of x is set; bit 0 is the low-order bit.
func GetBit(x, c int) (bool, error) {
	return logic.GetBit(x, c)
}
