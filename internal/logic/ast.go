package logic

// Statement represents a parsed boolean formula as an immutable tree.
// A Statement is either a leaf (Const or Variable) or an internal node
// (Unary or Binary) owning its children. Simplification never mutates a
// Statement; it builds a new tree.
type Statement interface {
	isStatement()
	String() string
}

// Const is a TRUE or FALSE literal.
type Const struct {
	Value bool
}

func (Const) isStatement() {}
func (s Const) String() string {
	if s.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Variable references a named proposition.
type Variable struct {
	Name string
}

func (Variable) isStatement() {}
func (s Variable) String() string {
	return s.Name
}

// UnaryOp represents monadic operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

// Apply evaluates the operator on a concrete operand.
func (op UnaryOp) Apply(v bool) bool {
	switch op {
	case OpNot:
		return !v
	default:
		return v
	}
}

// BinaryOp represents binary connectives.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpImplies
	OpIff
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImplies:
		return "->"
	case OpIff:
		return "<->"
	default:
		return "?"
	}
}

// Apply evaluates the connective on concrete operands. IMPLIES is material
// implication: false iff the left operand is true and the right is false.
func (op BinaryOp) Apply(l, r bool) bool {
	switch op {
	case OpAnd:
		return l && r
	case OpOr:
		return l || r
	case OpImplies:
		return !l || r
	case OpIff:
		return l == r
	default:
		return false
	}
}

// Valid reports whether op is one of the four connectives.
func (op BinaryOp) Valid() bool {
	switch op {
	case OpAnd, OpOr, OpImplies, OpIff:
		return true
	default:
		return false
	}
}

// Unary applies a monadic operator to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Statement
}

func (Unary) isStatement() {}
func (s Unary) String() string {
	return s.Op.String() + s.Operand.String()
}

// Binary joins two sub-statements with a connective.
type Binary struct {
	Op    BinaryOp
	Left  Statement
	Right Statement
}

func (Binary) isStatement() {}
func (s Binary) String() string {
	return "(" + s.Left.String() + " " + s.Op.String() + " " + s.Right.String() + ")"
}

// Helper functions to construct statement nodes

// True returns the TRUE literal.
func True() Statement {
	return Const{Value: true}
}

// False returns the FALSE literal.
func False() Statement {
	return Const{Value: false}
}

// Lit creates a constant from a boolean.
func Lit(v bool) Statement {
	return Const{Value: v}
}

// Var creates a variable reference.
func Var(name string) Statement {
	return Variable{Name: name}
}

// Not creates a negation.
func Not(s Statement) Statement {
	return Unary{Op: OpNot, Operand: s}
}

// And creates a conjunction.
func And(left, right Statement) Statement {
	return Binary{Op: OpAnd, Left: left, Right: right}
}

// Or creates a disjunction.
func Or(left, right Statement) Statement {
	return Binary{Op: OpOr, Left: left, Right: right}
}

// Implies creates a material implication.
func Implies(left, right Statement) Statement {
	return Binary{Op: OpImplies, Left: left, Right: right}
}

// Iff creates a biconditional.
func Iff(left, right Statement) Statement {
	return Binary{Op: OpIff, Left: left, Right: right}
}

// Equal reports structural equality of two statements.
func Equal(a, b Statement) bool {
	switch left := a.(type) {
	case Const:
		right, ok := b.(Const)
		return ok && left.Value == right.Value
	case Variable:
		right, ok := b.(Variable)
		return ok && left.Name == right.Name
	case Unary:
		right, ok := b.(Unary)
		if !ok {
			return false
		}
		return left.Op == right.Op && Equal(left.Operand, right.Operand)
	case Binary:
		right, ok := b.(Binary)
		if !ok {
			return false
		}
		return left.Op == right.Op &&
			Equal(left.Left, right.Left) &&
			Equal(left.Right, right.Right)
	default:
		return false
	}
}

// Variables returns the distinct variable names in s in first-occurrence
// order. This order fixes the column order of truth tables built from s.
func Variables(s Statement) []string {
	order := make([]string, 0)
	seen := make(map[string]struct{})
	collectVariables(s, seen, &order)
	return order
}

func collectVariables(s Statement, seen map[string]struct{}, order *[]string) {
	switch n := s.(type) {
	case Variable:
		if _, ok := seen[n.Name]; !ok {
			seen[n.Name] = struct{}{}
			*order = append(*order, n.Name)
		}
	case Unary:
		collectVariables(n.Operand, seen, order)
	case Binary:
		collectVariables(n.Left, seen, order)
		collectVariables(n.Right, seen, order)
	}
}
