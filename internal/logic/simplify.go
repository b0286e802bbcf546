package logic

import "fmt"

// Simplify rewrites a statement into a logically equivalent, structurally
// smaller form using the supplied truth table as context. A complete table
// that is a tautology or contradiction collapses the whole statement to a
// single literal. Otherwise structural identities are applied to a
// fixpoint: constant folding, double negation, idempotence, and complement
// laws. Every rewrite strictly shrinks the tree, so the fixpoint loop
// terminates and the result is idempotent under the same table. The input
// is never mutated.
func Simplify(stmt Statement, table *TruthTable) (Statement, error) {
	if stmt == nil {
		return nil, ErrInvalidStatement
	}
	if table == nil {
		return nil, fmt.Errorf("%w: simplify requires a truth table context", ErrInvalidStatement)
	}

	if table.Complete() && len(table.Rows()) > 0 {
		switch table.Classify() {
		case Tautology:
			return True(), nil
		case Contradiction:
			return False(), nil
		}
	}

	out := stmt
	for {
		next, changed := simplifyOnce(out)
		if !changed {
			return next, nil
		}
		out = next
	}
}

// simplifyOnce performs one bottom-up rewrite pass and reports whether
// anything changed.
func simplifyOnce(s Statement) (Statement, bool) {
	switch n := s.(type) {
	case Unary:
		operand, changed := simplifyOnce(n.Operand)
		if n.Op == OpNot {
			// !!p => p
			if inner, ok := operand.(Unary); ok && inner.Op == OpNot {
				return inner.Operand, true
			}
			// !TRUE => FALSE, !FALSE => TRUE
			if c, ok := operand.(Const); ok {
				return Const{Value: !c.Value}, true
			}
		}
		return Unary{Op: n.Op, Operand: operand}, changed

	case Binary:
		left, leftChanged := simplifyOnce(n.Left)
		right, rightChanged := simplifyOnce(n.Right)
		if folded, ok := foldBinary(n.Op, left, right); ok {
			return folded, true
		}
		return Binary{Op: n.Op, Left: left, Right: right}, leftChanged || rightChanged

	default:
		return s, false
	}
}

// foldBinary applies connective identities when an operand is a constant
// or the operands are structurally related.
func foldBinary(op BinaryOp, left, right Statement) (Statement, bool) {
	leftConst, leftOk := left.(Const)
	rightConst, rightOk := right.(Const)
	if leftOk && rightOk {
		return Const{Value: op.Apply(leftConst.Value, rightConst.Value)}, true
	}

	switch op {
	case OpAnd:
		switch {
		case leftOk && leftConst.Value: // TRUE & p => p
			return right, true
		case leftOk: // FALSE & p => FALSE
			return False(), true
		case rightOk && rightConst.Value: // p & TRUE => p
			return left, true
		case rightOk: // p & FALSE => FALSE
			return False(), true
		case Equal(left, right): // p & p => p
			return left, true
		case complementary(left, right): // p & !p => FALSE
			return False(), true
		}

	case OpOr:
		switch {
		case leftOk && leftConst.Value: // TRUE | p => TRUE
			return True(), true
		case leftOk: // FALSE | p => p
			return right, true
		case rightOk && rightConst.Value: // p | TRUE => TRUE
			return True(), true
		case rightOk: // p | FALSE => p
			return left, true
		case Equal(left, right): // p | p => p
			return left, true
		case complementary(left, right): // p | !p => TRUE
			return True(), true
		}

	case OpImplies:
		switch {
		case leftOk && !leftConst.Value: // FALSE -> p => TRUE
			return True(), true
		case leftOk: // TRUE -> p => p
			return right, true
		case rightOk && rightConst.Value: // p -> TRUE => TRUE
			return True(), true
		case rightOk: // p -> FALSE => !p
			return Not(left), true
		case Equal(left, right): // p -> p => TRUE
			return True(), true
		}

	case OpIff:
		switch {
		case leftOk && leftConst.Value: // TRUE <-> p => p
			return right, true
		case leftOk: // FALSE <-> p => !p
			return Not(right), true
		case rightOk && rightConst.Value: // p <-> TRUE => p
			return left, true
		case rightOk: // p <-> FALSE => !p
			return Not(left), true
		case Equal(left, right): // p <-> p => TRUE
			return True(), true
		case complementary(left, right): // p <-> !p => FALSE
			return False(), true
		}
	}

	return nil, false
}

// complementary reports whether one operand is the direct negation of the
// other.
func complementary(a, b Statement) bool {
	if n, ok := a.(Unary); ok && n.Op == OpNot && Equal(n.Operand, b) {
		return true
	}
	if n, ok := b.(Unary); ok && n.Op == OpNot && Equal(n.Operand, a) {
		return true
	}
	return false
}
