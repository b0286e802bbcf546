package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simplified parses an expression, builds its full truth table, and
// simplifies against it.
func simplified(t *testing.T, input string) Statement {
	t.Helper()
	stmt, err := Parse(input)
	require.NoError(t, err)

	table, err := NewTruthTable(stmt)
	require.NoError(t, err)

	out, err := Simplify(stmt, table)
	require.NoError(t, err)
	return out
}

func TestSimplify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected Statement
	}{
		{
			name:     "tautology collapses to TRUE",
			input:    "a|!a",
			expected: True(),
		},
		{
			name:     "contradiction collapses to FALSE",
			input:    "a&!a",
			expected: False(),
		},
		{
			name:     "contrapositive is a tautology",
			input:    "(a->b)<->(!b->!a)",
			expected: True(),
		},
		{
			name:     "double negation",
			input:    "!!a",
			expected: Var("a"),
		},
		{
			name:     "quadruple negation",
			input:    "!!!!a",
			expected: Var("a"),
		},
		{
			name:     "conjunction with TRUE",
			input:    "a&TRUE",
			expected: Var("a"),
		},
		{
			name:     "disjunction with FALSE",
			input:    "FALSE|a",
			expected: Var("a"),
		},
		{
			name:     "constant branches fold away",
			input:    "(a&TRUE)|(b&FALSE)",
			expected: Var("a"),
		},
		{
			name:     "idempotent conjunction",
			input:    "a&a",
			expected: Var("a"),
		},
		{
			name:     "implication to FALSE becomes negation",
			input:    "a->FALSE",
			expected: Not(Var("a")),
		},
		{
			name:     "biconditional with TRUE",
			input:    "TRUE<->a",
			expected: Var("a"),
		},
		{
			name:     "contingent statement is untouched",
			input:    "a&b",
			expected: And(Var("a"), Var("b")),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := simplified(t, tt.input)
			assert.True(t, Equal(tt.expected, out),
				"expected %s, got %s", tt.expected, out)
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"a|!a",
		"a&!a",
		"!!a",
		"(a&TRUE)|(b&FALSE)",
		"a&b|!(c|a)",
		"a->FALSE",
		"(a->b)&(b->a)",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			stmt, err := Parse(input)
			require.NoError(t, err)

			table, err := NewTruthTable(stmt)
			require.NoError(t, err)

			once, err := Simplify(stmt, table)
			require.NoError(t, err)

			twice, err := Simplify(once, table)
			require.NoError(t, err)
			assert.True(t, Equal(once, twice),
				"simplify not idempotent: %s vs %s", once, twice)
		})
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	stmt, err := Parse("!!a&TRUE")
	require.NoError(t, err)
	before := stmt.String()

	table, err := NewTruthTable(stmt)
	require.NoError(t, err)

	_, err = Simplify(stmt, table)
	require.NoError(t, err)
	assert.Equal(t, before, stmt.String())
}

func TestSimplifyEquivalence(t *testing.T) {
	t.Parallel()
	// the simplified statement must agree with the original on every row
	inputs := []string{
		"a&b|!(c|a)",
		"(a|FALSE)->(b&TRUE)",
		"!(a&!a)|b",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			stmt, err := Parse(input)
			require.NoError(t, err)

			table, err := NewTruthTable(stmt)
			require.NoError(t, err)

			out, err := Simplify(stmt, table)
			require.NoError(t, err)

			for _, row := range table.Rows() {
				value, err := Eval(out, row.Assignment)
				require.NoError(t, err)
				assert.Equal(t, row.Value, value, "row %d", row.Index)
			}
		})
	}
}

func TestSimplifyIncompleteTableSkipsCollapse(t *testing.T) {
	t.Parallel()
	// a tautology that none of the structural identities reduce
	stmt, err := Parse("(a->b)<->(!b->!a)")
	require.NoError(t, err)

	// a partial table cannot witness the tautology
	table, err := NewTruthTableRange(stmt, 0, 2)
	require.NoError(t, err)

	out, err := Simplify(stmt, table)
	require.NoError(t, err)
	assert.True(t, Equal(stmt, out), "got %s", out)
}

func TestSimplifyInvalidArguments(t *testing.T) {
	t.Parallel()
	table, err := NewTruthTable(Var("a"))
	require.NoError(t, err)

	_, err = Simplify(nil, table)
	assert.ErrorIs(t, err, ErrInvalidStatement)

	_, err = Simplify(Var("a"), nil)
	assert.ErrorIs(t, err, ErrInvalidStatement)
}
