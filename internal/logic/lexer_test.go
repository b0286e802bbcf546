package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Value: "", Pos: 0},
			},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			expected: []Token{
				{Type: TokenEOF, Value: "", Pos: 3},
			},
		},
		{
			name:  "single variable",
			input: "a",
			expected: []Token{
				{Type: TokenVariable, Value: "a", Pos: 0},
				{Type: TokenEOF, Value: "", Pos: 1},
			},
		},
		{
			name:  "conjunction",
			input: "a&b",
			expected: []Token{
				{Type: TokenVariable, Value: "a", Pos: 0},
				{Type: TokenAnd, Value: "&", Pos: 1},
				{Type: TokenVariable, Value: "b", Pos: 2},
				{Type: TokenEOF, Value: "", Pos: 3},
			},
		},
		{
			name:  "all operators",
			input: "!a & b | c -> d <-> e",
			expected: []Token{
				{Type: TokenNot, Value: "!", Pos: 0},
				{Type: TokenVariable, Value: "a", Pos: 1},
				{Type: TokenAnd, Value: "&", Pos: 3},
				{Type: TokenVariable, Value: "b", Pos: 5},
				{Type: TokenOr, Value: "|", Pos: 7},
				{Type: TokenVariable, Value: "c", Pos: 9},
				{Type: TokenImplies, Value: "->", Pos: 11},
				{Type: TokenVariable, Value: "d", Pos: 14},
				{Type: TokenIff, Value: "<->", Pos: 16},
				{Type: TokenVariable, Value: "e", Pos: 20},
				{Type: TokenEOF, Value: "", Pos: 21},
			},
		},
		{
			name:  "parenthesized expression",
			input: "a&b|!(c|a)",
			expected: []Token{
				{Type: TokenVariable, Value: "a", Pos: 0},
				{Type: TokenAnd, Value: "&", Pos: 1},
				{Type: TokenVariable, Value: "b", Pos: 2},
				{Type: TokenOr, Value: "|", Pos: 3},
				{Type: TokenNot, Value: "!", Pos: 4},
				{Type: TokenLParen, Value: "(", Pos: 5},
				{Type: TokenVariable, Value: "c", Pos: 6},
				{Type: TokenOr, Value: "|", Pos: 7},
				{Type: TokenVariable, Value: "a", Pos: 8},
				{Type: TokenRParen, Value: ")", Pos: 9},
				{Type: TokenEOF, Value: "", Pos: 10},
			},
		},
		{
			name:  "variable with digits and underscores",
			input: "p_1&q2x",
			expected: []Token{
				{Type: TokenVariable, Value: "p_1", Pos: 0},
				{Type: TokenAnd, Value: "&", Pos: 3},
				{Type: TokenVariable, Value: "q2x", Pos: 4},
				{Type: TokenEOF, Value: "", Pos: 7},
			},
		},
		{
			name:  "constants",
			input: "TRUE|false",
			expected: []Token{
				{Type: TokenTrue, Value: "TRUE", Pos: 0},
				{Type: TokenOr, Value: "|", Pos: 4},
				{Type: TokenFalse, Value: "false", Pos: 5},
				{Type: TokenEOF, Value: "", Pos: 10},
			},
		},
		{
			name:  "mixed case constants",
			input: "True&False",
			expected: []Token{
				{Type: TokenTrue, Value: "True", Pos: 0},
				{Type: TokenAnd, Value: "&", Pos: 4},
				{Type: TokenFalse, Value: "False", Pos: 5},
				{Type: TokenEOF, Value: "", Pos: 10},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			toks, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, toks)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantPos int
	}{
		{name: "digit-led variable", input: "3fe & q", wantPos: 0},
		{name: "underscore-led variable", input: "_x", wantPos: 0},
		{name: "unknown character", input: "a @ b", wantPos: 2},
		{name: "lone dash", input: "a - b", wantPos: 2},
		{name: "dash at end", input: "a-", wantPos: 1},
		{name: "incomplete iff", input: "a <- b", wantPos: 2},
		{name: "lone angle bracket", input: "a<b", wantPos: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.wantPos, syntaxErr.Pos)
		})
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "VARIABLE(abc)", Token{Type: TokenVariable, Value: "abc"}.String())
	assert.Equal(t, "IFF", Token{Type: TokenIff, Value: "<->"}.String())
	assert.Equal(t, "EOF", Token{Type: TokenEOF}.String())
}
