package logic

import "fmt"

// TokenType defines the different types of tokens produced by the lexer.
type TokenType int

const (
	TokenVariable TokenType = iota // variable name
	TokenTrue                      // TRUE literal
	TokenFalse                     // FALSE literal
	TokenNot                       // '!'
	TokenAnd                       // '&'
	TokenOr                        // '|'
	TokenImplies                   // '->'
	TokenIff                       // '<->'
	TokenLParen                    // '('
	TokenRParen                    // ')'
	TokenEOF                       // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenVariable:
		return "VARIABLE"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenNot:
		return "NOT"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenImplies:
		return "IMPLIES"
	case TokenIff:
		return "IFF"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenEOF:
		return "EOF"
	default:
		return "?"
	}
}

// Token represents a single lexical token with its type, the literal text
// it was scanned from, and its starting position in the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Type == TokenVariable {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return t.Type.String()
}
